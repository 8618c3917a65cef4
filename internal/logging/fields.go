package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldCycleID    = "cycle_id"
	FieldMode       = "mode"
	FieldDate       = "date"
	FieldTeam       = "team"
	FieldCount      = "count"
	FieldRadius     = "radius"
	FieldSleep      = "sleep"
	FieldReason     = "reason"
	FieldDurationMS = "duration_ms"
)
