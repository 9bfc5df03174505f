package cron

import (
	"context"

	"painterbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthSchedule is how often dependency health is refreshed.
const HealthSchedule = "@every 1m"

// StartHealthMonitor refreshes the health snapshot served by /health on a
// schedule. Nil clients are skipped. Stop the returned cron on shutdown.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client, logger *zap.Logger) (*cron.Cron, error) {
	refresh := func() {
		status := utils.RefreshHealth(context.Background(), redisClient, mongoClient)
		if (status.Redis != nil && !*status.Redis) || (status.Mongo != nil && !*status.Mongo) {
			logger.Warn("Dependency health check failed",
				zap.Boolp("redis", status.Redis), zap.Boolp("mongo", status.Mongo))
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(HealthSchedule, refresh); err != nil {
		return nil, err
	}
	refresh()
	c.Start()
	return c, nil
}
