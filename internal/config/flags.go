package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a backend API base URL (e.g. http://localhost:3000/api)
//	-t request timeout (e.g. "30s", "1m")
//	-d local SQLite database file
//	-i session expiry check interval (e.g. "1m")
//	-log log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiAddress           string
		requestTimeout       time.Duration
		databaseDSN          string
		sessionCheckInterval time.Duration
		logFile              string
		jsonConfigPath       string
	)

	fs := flag.NewFlagSet("career-dashboard", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "Backend API base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local SQLite database file")
	fs.DurationVar(&sessionCheckInterval, "i", 0, "Session expiry check interval (e.g., 1m)")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App:          App{LogFile: logFile},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Adapter:      Adapter{HTTPAddress: apiAddress, RequestTimeout: requestTimeout},
		Workers:      Workers{SessionCheckInterval: sessionCheckInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}
