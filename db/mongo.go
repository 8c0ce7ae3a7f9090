package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB connection and verifies it with a ping. The caller
// owns the returned client and is responsible for disconnecting it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes declares the unique indexes the repositories rely on:
// users.username and persons.name.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	unique := options.Index().SetUnique(true)

	_, err := client.Database(dbName).Collection("users").Indexes().
		CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: unique,
		})
	if err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}

	_, err = client.Database(dbName).Collection("persons").Indexes().
		CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: unique,
		})
	if err != nil {
		return fmt.Errorf("error creating contact name index: %w", err)
	}

	return nil
}
