package config

import (
	"fmt"
	"rentals/pkg/store"
)

// OpenStore connects the backend selected by StorageBackend. Mongo and Redis
// connections are kept on cfg.Client so GracefulShutdown can close them.
func (cfg *Config) OpenStore() (store.Store, error) {
	switch cfg.StorageBackend {
	case store.BackendMemory:
		cfg.Log.Warn("Using in-memory store, data will not survive a restart")
		return store.NewMemoryStore(), nil
	case store.BackendFile:
		return store.NewFileStore(cfg.DataDir)
	case store.BackendMongo:
		if err := cfg.Client.SetMongo(cfg.MongoURI, cfg.MongoConnTimeout); err != nil {
			return nil, err
		}
		return store.NewMongoStore(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.StoreTimeout), nil
	case store.BackendRedis:
		if err := cfg.Client.SetRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisConnTimeout); err != nil {
			return nil, err
		}
		return store.NewRedisStore(cfg.Client.Redis, cfg.RedisKeyPrefix, cfg.StoreTimeout), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
