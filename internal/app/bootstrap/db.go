package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/inkpost/inkpost/internal/app/system/runstate"
)

// connectMongo dials the document store with bounded timeouts and a capped
// connection pool, and verifies the connection with a ping.
//
// The server monitor keeps the shared connectivity flag in sync for the
// lifetime of the client: a failed heartbeat marks the store disconnected,
// and the next successful heartbeat (the driver keeps probing on its own)
// marks it connected again. That heartbeat loop is the reconnect mechanism;
// no separate retry of established clients is needed.
func connectMongo(ctx context.Context, cfg Config, flags *runstate.Flags, logger *zap.Logger) (*mongo.Client, error) {
	monitor := &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			if !flags.DB() {
				logger.Info("document store connection restored",
					zap.String("connection_id", e.ConnectionID))
			}
			flags.SetDB(true)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			if flags.DB() {
				logger.Warn("document store connection lost",
					zap.String("connection_id", e.ConnectionID),
					zap.Error(e.Failure))
			}
			flags.SetDB(false)
		},
	}

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(cfg.MongoMaxPoolSize).
		SetServerSelectionTimeout(cfg.MongoSelectTimeout).
		SetSocketTimeout(cfg.MongoSocketTimeout).
		SetServerMonitor(monitor)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}
