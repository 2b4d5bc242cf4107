package interpret

// Config holds interpretation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for interpretation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.6,
	}
}
