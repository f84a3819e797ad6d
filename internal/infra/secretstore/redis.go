package secretstore

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps the credential in a single redis key, for deployments
// where the storefront runs more than one replica against one session.
type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(cfg *config.RedisStoreConfig) repository.CredentialRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisStore{
		client: client,
		key:    cfg.KeyPrefix + repository.CredentialKey,
	}
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrCredentialNotFound
		}

		return "", errors.Wrap(err, "redis get credential")
	}

	if token == "" {
		return "", repository.ErrCredentialNotFound
	}

	return token, nil
}

func (s *redisStore) Set(ctx context.Context, token string) error {
	// No TTL: the credential lives until sign-out, like the other stores.
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set credential")
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(err, "redis delete credential")
	}

	return nil
}
