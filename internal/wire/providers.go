package wire

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vanshaj8/Promptly/internal/cache"
	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/config"
	"github.com/vanshaj8/Promptly/internal/dbmongo"
	"github.com/vanshaj8/Promptly/internal/dbmysql"
	"github.com/vanshaj8/Promptly/internal/instagram"
)

const startupTimeout = 5 * time.Second

// Application is everything the service and the sync CLI need.
type Application struct {
	Config   *config.Config
	Logger   *logrus.Logger
	DB       *gorm.DB
	JWT      *common.JWTManager
	Handler  *instagram.Handler
	Poller   *instagram.SyncPoller
	Webhooks *instagram.WebhookReceiver
	Archive  *dbmongo.DeliveryArchive
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*logrus.Logger, error) {
	return common.NewLogger(cfg.Logging)
}

func ProvideDatabase(cfg *config.Config, logger *logrus.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// ProvideRedis returns nil when the cache is disabled or unreachable; lookups then go straight to MySQL.
func ProvideRedis(cfg *config.Config, logger *logrus.Logger) (*redis.Client, func()) {
	noop := func() {}
	if !cfg.Redis.Enabled {
		return nil, noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.WithError(err).WithField("module", "wire").Warn("redis unavailable, running without account cache")
		return nil, noop
	}
	return rdb, func() { _ = rdb.Close() }
}

func ProvideAccountCache(cfg *config.Config, rdb *redis.Client, logger *logrus.Logger) *cache.AccountCache {
	return cache.NewAccountCache(rdb, cfg.Redis.TTL, logger)
}

// ProvideDeliveryArchive returns nil when MongoDB is disabled or unreachable.
func ProvideDeliveryArchive(cfg *config.Config, logger *logrus.Logger) (*dbmongo.DeliveryArchive, func()) {
	noop := func() {}
	if !cfg.MongoDB.Enabled {
		return nil, noop
	}
	log := logger.WithField("module", "wire")

	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.WithError(err).Warn("mongodb unavailable, webhook deliveries will not be archived")
		return nil, noop
	}

	archive := dbmongo.NewDeliveryArchive(mc)
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := archive.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Warn("could not create delivery indexes")
	}

	return archive, func() {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		_ = mc.Close(ctx)
	}
}

// ProvideArchiver keeps a missing archive as a nil interface so the receiver skips it.
func ProvideArchiver(archive *dbmongo.DeliveryArchive) instagram.DeliveryArchiver {
	if archive == nil {
		return nil
	}
	return archive
}
