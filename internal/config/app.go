package config

import "os"

func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is the path for rotated file logging; empty disables it.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
