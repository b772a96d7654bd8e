package ui

// DisplayConfig holds configuration for UI rendering
type DisplayConfig struct {
	// Truncation limits
	MaxPlanNameLength int
	MaxPreviewLines   int
}

// DefaultConfig returns the default display configuration
func DefaultConfig() DisplayConfig {
	return DisplayConfig{
		MaxPlanNameLength: 20,
		MaxPreviewLines:   5,
	}
}

// Global display configuration (can be overridden)
var Display = DefaultConfig()
