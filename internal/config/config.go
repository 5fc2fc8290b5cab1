package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host             string
	Port             int
	AllowOrigins     []string
	LogLevel         string
	LogFile          string
	MaxUploadMB      int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ChartDir         string // directory with size chart files loaded on start
	DefaultUnit      string // in | cm, used when a request does not name one
	AgeGateRejectURL string
	CookieSecure     bool
	SupportEmail     string
}

// Load reads the process environment. A .env file in the working directory,
// if present, fills in variables that are not already set.
func Load() Config {
	_ = godotenv.Load()
	return loadWith(os.Getenv)
}

func loadWith(lookup func(string) string) Config {
	getenv := func(k, def string) string {
		if v := strings.TrimSpace(lookup(k)); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.Atoi(getenv("PORT", "8082"))
	if err != nil || port <= 0 {
		port = 8082
	}
	mb, err := strconv.Atoi(getenv("MAX_UPLOAD_MB", "8"))
	if err != nil || mb <= 0 {
		mb = 8
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Config{
		Host:             getenv("HOST", "127.0.0.1"),
		Port:             port,
		AllowOrigins:     origins,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          getenv("LOG_FILE", "logs/sizeguide-service.log"),
		MaxUploadMB:      mb,
		ReadTimeout:      duration(getenv("READ_TIMEOUT", "15s"), 15*time.Second),
		WriteTimeout:     duration(getenv("WRITE_TIMEOUT", "15s"), 15*time.Second),
		ChartDir:         getenv("SIZECHART_DIR", "charts"),
		DefaultUnit:      strings.ToLower(getenv("DEFAULT_UNIT", "in")),
		AgeGateRejectURL: getenv("AGE_GATE_REJECT_URL", "https://www.google.com"),
		CookieSecure:     toBool(getenv("COOKIE_SECURE", "false")),
		SupportEmail:     getenv("SUPPORT_EMAIL", "support@yourstore.com"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func toBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
