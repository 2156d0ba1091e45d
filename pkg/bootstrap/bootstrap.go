// Package bootstrap wires configuration, logging and the engine's
// dependencies into a ready-to-use Service.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	shared "github.com/trekline/server/pkg"
	"github.com/trekline/server/pkg/infrastructure/kvstore"
	"github.com/trekline/server/pkg/infrastructure/oauth"
	"github.com/trekline/server/pkg/integrations/strava"
	"github.com/trekline/server/pkg/progress"
	activitysync "github.com/trekline/server/pkg/sync"
	"github.com/trekline/server/pkg/tracker"
)

// Config holds standard configuration for the service.
type Config struct {
	DBPath      string
	ListenAddr  string
	SentryDSN   string
	Environment string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	dbPath := os.Getenv("TREKLINE_DB_PATH")
	if dbPath == "" {
		dbPath = "trekline.db"
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &Config{
		DBPath:      dbPath,
		ListenAddr:  addr,
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Environment: env,
	}
}

// GetSlogHandlerOptions returns the standard handler options.
func GetSlogHandlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level}
}

// ComponentHandler wraps a slog.Handler to prepend [component] to the message.
type ComponentHandler struct {
	slog.Handler
	component string
}

// WithGroup implements slog.Handler
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{
		Handler:   h.Handler.WithGroup(name),
		component: h.component,
	}
}

// WithAttrs implements slog.Handler
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newComp := h.component
	for _, a := range attrs {
		if a.Key == "component" {
			newComp = a.Value.String()
		}
	}
	return &ComponentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: newComp,
	}
}

// Handle implements slog.Handler
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	comp := h.component

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			comp = a.Value.String()
			return false // stop
		}
		return true
	})

	if comp != "" {
		newMsg := fmt.Sprintf("[%s] %s", comp, r.Message)
		newRecord := slog.NewRecord(r.Time, r.Level, newMsg, r.PC)
		// Keep the component attribute in the structured payload.
		r.Attrs(func(a slog.Attr) bool {
			newRecord.AddAttrs(a)
			return true
		})
		r = newRecord
	}

	return h.Handler.Handle(ctx, r)
}

// NewLogger creates a configured logger instance.
func NewLogger(serviceName string) *slog.Logger {
	logLevelStr := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch strings.ToLower(logLevelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := GetSlogHandlerOptions(level)
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(&ComponentHandler{Handler: handler}).With("service", serviceName)
}

// Service holds initialized dependencies.
type Service struct {
	Config  *Config
	Logger  *slog.Logger
	KV      *kvstore.SQLite
	Tokens  *oauth.StoreTokenSource
	Tracker *tracker.Tracker
}

// NewService initializes all standard dependencies.
func NewService(ctx context.Context) (*Service, error) {
	logger := NewLogger(shared.ServiceName)
	cfg := LoadConfig()

	logger.Info("Initializing service", "db_path", cfg.DBPath, "environment", cfg.Environment)

	kv, err := kvstore.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("Store init failed", "error", err)
		return nil, fmt.Errorf("kvstore init: %w", err)
	}

	tokens := oauth.NewStoreTokenSource(kv)
	feed := strava.NewClientWithTokenSource(tokens)
	engine := activitysync.NewEngine(feed, kv, logger)

	store, err := progress.NewStore(ctx, kv, logger)
	if err != nil {
		kv.Close()
		logger.Error("Progress store init failed", "error", err)
		return nil, fmt.Errorf("progress store init: %w", err)
	}

	return &Service{
		Config:  cfg,
		Logger:  logger,
		KV:      kv,
		Tokens:  tokens,
		Tracker: tracker.New(store, engine, logger),
	}, nil
}

// Close releases the service's resources.
func (s *Service) Close() error {
	return s.KV.Close()
}
