package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type ConnectorConfig struct {
	URI    string
	DbName string
}

func NewConfig(uri, dbName string) ConnectorConfig {
	return ConnectorConfig{
		URI:    uri,
		DbName: dbName,
	}
}

type ConnectorFunc func() (*mongo.Database, error)

const connectAttempts int = 5

func NewMongoConnector(ctx context.Context, cfg ConnectorConfig) ConnectorFunc {
	log := logging.GetFromContext(ctx)

	return func() (*mongo.Database, error) {
		sublogger := log.With().Str("database", cfg.DbName).Logger()

		var err error

		for attempt := 1; attempt <= connectAttempts; attempt++ {
			sublogger.Info().Msgf("connecting to mongodb (attempt %d)", attempt)

			var client *mongo.Client
			client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
			if err == nil {
				pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				err = client.Ping(pingCtx, readpref.Primary())
				cancel()

				if err == nil {
					sublogger.Info().Msg("connected to mongodb")
					return client.Database(cfg.DbName), nil
				}

				_ = client.Disconnect(ctx)
			}

			sublogger.Error().Err(err).Msg("failed to connect to database")
			time.Sleep(3 * time.Second)
		}

		return nil, fmt.Errorf("unable to connect to mongodb after %d attempts: %w", connectAttempts, err)
	}
}
