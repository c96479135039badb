package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes the final state of each game as JSON instead of text
	JSONFormat bool

	// ShowBoard prints the board grid after each game
	ShowBoard bool

	// ShowThreats lists both threat sets after each game
	ShowThreats bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
