package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrMode      = "mode"
	AttrKind      = "kind"
)
