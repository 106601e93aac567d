// Package ledger records blob objects that were left behind without a
// referencing meme row, so operators can find and remove them.
package ledger

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OrphanCollection = "orphans"

type Ledger struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Ledger, error) {
	logger.Info("connecting to orphan ledger")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	l := &Ledger{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initOrphanCollection(l); err != nil {
		return nil, err
	}

	return l, nil
}

func initOrphanCollection(l *Ledger) error {
	ctx, cancel := context.WithTimeout(context.Background(), l.QueryTimeout)
	defer cancel()

	db := l.Client.Database(l.DBName)

	collections, err := db.ListCollectionNames(ctx, bson.M{"name": OrphanCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "reason", "recorded_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"minLength":   1,
					"description": "blob locator",
				},
				"reason":      bson.M{"bsonType": "string"},
				"meme_id":     bson.M{"bsonType": []string{"long", "int"}},
				"recorded_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.CreateCollection(ctx, OrphanCollection, collOpts); err != nil {
		return err
	}

	_, err = db.Collection(OrphanCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recorded_at", Value: 1}},
	})

	return err
}

func (l *Ledger) collection() *mongo.Collection {
	return l.Client.Database(l.DBName).Collection(OrphanCollection)
}

func (l *Ledger) Stop() error {
	return l.Client.Disconnect(context.Background())
}
