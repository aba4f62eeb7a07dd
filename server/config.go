package server

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spektr-org/plotfit/render"
)

// Config holds HTTP server settings. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	ChartWidth      int
	ChartHeight     int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8501",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    1 << 20,
		ChartWidth:      render.DefaultWidth,
		ChartHeight:     render.DefaultHeight,
	}
}

// LoadConfig reads PLOTFIT_* environment variables over the defaults.
//
//	PLOTFIT_ADDR              listen address (":8501")
//	PLOTFIT_READ_TIMEOUT      duration ("10s")
//	PLOTFIT_WRITE_TIMEOUT     duration ("30s")
//	PLOTFIT_SHUTDOWN_TIMEOUT  duration ("5s")
//	PLOTFIT_MAX_BODY_BYTES    request body limit (1048576)
//	PLOTFIT_CHART_WIDTH       pixels (1024)
//	PLOTFIT_CHART_HEIGHT      pixels (576)
func LoadConfig() Config {
	def := DefaultConfig()
	return Config{
		Addr:            EnvOr("PLOTFIT_ADDR", def.Addr),
		ReadTimeout:     EnvDurationOr("PLOTFIT_READ_TIMEOUT", def.ReadTimeout),
		WriteTimeout:    EnvDurationOr("PLOTFIT_WRITE_TIMEOUT", def.WriteTimeout),
		ShutdownTimeout: EnvDurationOr("PLOTFIT_SHUTDOWN_TIMEOUT", def.ShutdownTimeout),
		MaxBodyBytes:    int64(EnvIntOr("PLOTFIT_MAX_BODY_BYTES", int(def.MaxBodyBytes))),
		ChartWidth:      EnvIntOr("PLOTFIT_CHART_WIDTH", def.ChartWidth),
		ChartHeight:     EnvIntOr("PLOTFIT_CHART_HEIGHT", def.ChartHeight),
	}
}

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvDurationOr returns the parsed duration env value or def on empty/parse failure.
func EnvDurationOr(key string, def time.Duration) time.Duration {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
