package candleterm

import (
	"os"

	"github.com/raykavin/candleterm/pkg/logger"
	"github.com/raykavin/candleterm/pkg/logger/zerolog"
)

const (
	// Default configuration values
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
)

// Environment variable names
const (
	envLogLevel      = "CANDLETERM_LOG_LEVEL"
	envLogTimeFormat = "CANDLETERM_LOG_TIME_FORMAT"
	envLogColor      = "CANDLETERM_LOG_COLOR"
)

// DefaultLog is the process-wide logger, configured from environment
// variables at startup.
var DefaultLog logger.Logger

func init() {
	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = zerolog.NewAdapter(log.Logger)
}

// initLogger creates a new logger instance configured from environment variables
func initLogger() (*zerolog.Logger, error) {
	logLevel := getEnvWithDefault(envLogLevel, defaultLogLevel)
	logTimeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)
	logColored := zerolog.ParseBool(getEnvWithDefault(envLogColor, defaultLogColored), true)

	return zerolog.New(logLevel, logTimeFormat, logColored)
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
