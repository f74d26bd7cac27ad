package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Services            *mongo.Collection
	SpecializedServices *mongo.Collection
	Projects            *mongo.Collection
	ContactMessages     *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Services:            db.Collection("services"),
		SpecializedServices: db.Collection("specialized_services"),
		Projects:            db.Collection("projects"),
		ContactMessages:     db.Collection("contact_messages"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sortIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "sort_order", Value: 1}, {Key: "title", Value: 1}},
	}
	for _, col := range []*mongo.Collection{cols.Services, cols.SpecializedServices, cols.Projects} {
		if _, err := col.Indexes().CreateOne(indexTimeout, sortIndex); err != nil {
			return err
		}
	}

	_, err := cols.SpecializedServices.Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = cols.ContactMessages.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	})
	return err
}
