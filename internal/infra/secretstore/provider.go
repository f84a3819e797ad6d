package secretstore

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerFile   = "file"
	providerRedis  = "redis"
	providerMemory = "memory"

	defaultFilePath = ".storefront/credential.json"
)

// Params holds dependencies for the credential store, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a CredentialRepository based on configuration.
func New(params Params) (repository.CredentialRepository, error) {
	cfg := params.Config.SecretStore
	logger := params.Logger

	switch cfg.Provider {
	case providerFile, "":
		path := defaultFilePath
		if cfg.File != nil && cfg.File.Path != "" {
			path = cfg.File.Path
		}
		logger.Info("Using file credential store", slog.String("path", path))

		return NewFileStore(path), nil

	case providerRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using redis credential store", slog.String("addr", cfg.Redis.Addr))

		return NewRedisStore(cfg.Redis), nil

	case providerMemory:
		logger.Info("Using in-memory credential store")

		return NewMemoryStore(), nil

	default:
		return nil, errors.Errorf("unknown secret store provider: %s", cfg.Provider)
	}
}
