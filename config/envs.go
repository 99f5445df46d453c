package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultMaxMazeDimension = 100
	defaultMazeSize         = 10
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	MaxMazeDimension int    // Largest width or height a client may request
	DefaultMazeSize  int    // Width and height used when a request omits them
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", defaultMaxMazeDimension),
		DefaultMazeSize:  getEnvAsIntWithDefault("DEFAULT_MAZE_SIZE", defaultMazeSize),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue when unset.
// A value that is set but cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
