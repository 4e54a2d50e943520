package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type ResponderKind string

const (
	ResponderScripted ResponderKind = "scripted"
	ResponderGemini   ResponderKind = "gemini"
)

type Config struct {
	Port string

	StorageBackend string        // "memory" or "firestore"
	Responder      ResponderKind // "scripted" (default) or "gemini"

	// ReplyDelay is the simulated "thinking" latency before the assistant
	// turn is appended.
	ReplyDelay time.Duration

	GCPProjectID string
	GCPLocation  string
	ModelName    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load reads all env vars and builds the config
func Load() *Config {
	var responder ResponderKind
	switch getEnv("ASSIST_RESPONDER", "scripted") {
	case "gemini":
		responder = ResponderGemini
	default:
		responder = ResponderScripted
	}

	cfg := &Config{
		Port: getEnv("ASSIST_PORT", "8080"),

		StorageBackend: getEnv("ASSIST_STORAGE_BACKEND", "memory"),
		Responder:      responder,

		ReplyDelay: time.Duration(getIntEnv("ASSIST_REPLY_DELAY_MS", 1500)) * time.Millisecond,

		GCPProjectID: getEnv("ASSIST_GCP_PROJECT", ""),
		GCPLocation:  getEnv("ASSIST_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("ASSIST_MODEL_NAME", "gemini-2.5-flash-lite"),
	}

	if cfg.StorageBackend == "firestore" && cfg.GCPProjectID == "" {
		log.Fatal("ASSIST_GCP_PROJECT must be set for the firestore backend")
	}
	if cfg.Responder == ResponderGemini && cfg.GCPProjectID == "" {
		log.Fatal("ASSIST_GCP_PROJECT must be set for the gemini responder")
	}

	return cfg
}
