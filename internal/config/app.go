package config

import "os"

func Addr() string {
	addr, ok := os.LookupEnv("SWEEPER_ADDR")
	if !ok {
		return ":8080"
	}
	return addr
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func LogFile() string {
	return os.Getenv("SWEEPER_LOG_FILE")
}
