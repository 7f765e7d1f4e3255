package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Addr           string
	Lang           string
	ImagesDir      string
	AllowedOrigins []string
	MapsAPIKey     string
}

// Defaults
const (
	DefaultAddr      = ":8080"
	DefaultLang      = "ru"
	DefaultImagesDir = "images"
	DefaultOrigin    = "http://localhost:8080"
)

// Load reads settings from envFile (if present) and the environment. The
// environment wins over the file.
func Load(envFile string) Config {
	file, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring %s: %v", envFile, err)
	}

	get := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := file[key]; v != "" {
			return v
		}
		return def
	}

	return Config{
		Addr:           get("PLANETS_ADDR", DefaultAddr),
		Lang:           get("PLANETS_LANG", DefaultLang),
		ImagesDir:      get("PLANETS_IMAGES_DIR", DefaultImagesDir),
		AllowedOrigins: splitList(get("PLANETS_ALLOWED_ORIGINS", DefaultOrigin)),
		MapsAPIKey:     get("GOOGLE_MAPS_API_KEY", ""),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
