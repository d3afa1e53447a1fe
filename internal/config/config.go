package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/dataset"
)

type Config struct {
	DatasetURL      string
	DataDir         string
	DatasetFile     string
	OutDir          string
	QueryActorID    string
	TopN            int
	SimilarK        int
	HTTPPort        string
	MongoURI        string
	MongoDB         string
	RedisAddr       string
	RedisPass       string
	CacheTTLSeconds int
	LogLevel        string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatasetURL:      getEnv("DATASET_URL", dataset.DefaultURL),
		DataDir:         getEnv("DATA_DIR", "data"),
		DatasetFile:     getEnv("DATASET_FILE", "imdb_movies_2000to2022.prolific.json"),
		OutDir:          getEnv("OUT_DIR", "data"),
		QueryActorID:    getEnv("QUERY_ACTOR_ID", "nm1165110"), // Chris Hemsworth
		TopN:            getEnvInt("TOP_N", 10),
		SimilarK:        getEnvInt("SIMILAR_K", 10),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "actor_network"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASSWORD", ""),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60*60),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// DatasetPath es la ruta local del NDJSON.
func (c *Config) DatasetPath() string {
	return filepath.Join(c.DataDir, c.DatasetFile)
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Debug().Str("component", "config").Msgf("%s no está seteado, usando valor por defecto", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		log.Debug().Str("component", "config").Msgf("%s no está seteado, usando valor por defecto", key)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("component", "config").Str("value", v).Msgf("%s inválido, usando valor por defecto", key)
		return def
	}
	return n
}
