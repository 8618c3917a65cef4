package config

const (
	envProvider = "PROVIDER"
	envStore    = "STORE"

	defaultProvider = "nhle"
	defaultStore    = "firestore"
)
