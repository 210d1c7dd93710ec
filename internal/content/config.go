package content

// Config controls generation limits for lesson content.
type Config struct {
	// MaxTokens is the response budget for a single component.
	MaxTokens int
}

// DefaultConfig returns the standard content generation configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 2000,
	}
}

// Per-component temperatures. Creative components (warm-ups, practice)
// run hotter than structural ones (instruction, assessment).
const (
	objectivesTemperature  = 0.8
	warmupTemperature      = 0.9
	instructionTemperature = 0.7
	practiceTemperature    = 0.85
	assessmentTemperature  = 0.7
)
