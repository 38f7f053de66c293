package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries every knob the binaries read from the environment.
// Nothing is required; every field has a working default.
type Config struct {
	Port           string
	AppEnv         string
	FontDir        string
	FontDownload   bool
	AllowedOrigins []string
	ThemePath      string
}

// Load reads the environment. godotenv runs before this in the
// binaries, so .env values are already visible here.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		AppEnv:       getEnv("APP_ENV", "development"),
		FontDir:      getEnv("FONT_DIR", "fonts"),
		FontDownload: getBool("FONT_DOWNLOAD", true),
		ThemePath:    os.Getenv("REPORT_THEME"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
