package redis

const (
	// KeyManualOrder holds the operator-curated display order
	KeyManualOrder = "liveboard:schedule:order"
	// KeyOverride holds the operator override state
	KeyOverride = "liveboard:schedule:override"
	// KeySettings holds the display settings
	KeySettings = "liveboard:schedule:settings"
	// KeySnapshot holds the last successfully fetched schedule
	KeySnapshot = "liveboard:schedule:snapshot"
)
