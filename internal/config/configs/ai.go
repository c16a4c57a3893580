package configs

import "time"

// AI configures the text generator. Without an API key every generation
// falls back to canned output.
type AI struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	Model        string        `env:"MODEL" envDefault:"gemini-2.0-flash"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
