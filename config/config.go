package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the defaults of the classroom driver
type Config struct {
	Defaults DefaultsConfig
	Search   SearchConfig
	Output   OutputConfig
	Debug    bool
}

// DefaultsConfig holds the values used when a prompt is left empty
type DefaultsConfig struct {
	Plaintext string
	Key       string
	Text      string
}

// SearchConfig holds brute-force settings
type SearchConfig struct {
	Parallel bool
	Workers  int
}

// OutputConfig holds CSV export settings
type OutputConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Plaintext: getEnv("SDES_PLAINTEXT", "10110101"),
			Key:       getEnv("SDES_KEY", "1010000010"),
			Text:      getEnv("SDES_TEXT", "Hello!"),
		},
		Search: SearchConfig{
			Parallel: getEnvBool("SDES_PARALLEL", true),
			Workers:  getEnvInt("SDES_WORKERS", 8),
		},
		Output: OutputConfig{
			Dir: getEnv("SDES_OUTPUT_DIR", "."),
		},
		Debug: getEnvBool("SDES_DEBUG", false),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`
Defaults: plaintext=%s key=%s text=%q
Search: parallel=%t workers=%d
Output: %s
Debug: %t`,
		c.Defaults.Plaintext, c.Defaults.Key, c.Defaults.Text,
		c.Search.Parallel, c.Search.Workers,
		c.Output.Dir,
		c.Debug,
	)
}
