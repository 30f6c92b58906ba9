package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the single client the whole process shares. The caller
// injects the resulting database handle into the route layer; nothing else
// talks to Mongo directly.
func Connect(uri string) *mongo.Client {
	if uri == "" {
		log.Fatal("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("mongo connect:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("mongo ping:", err)
	}

	return client
}

// EnsureIndexes creates the indexes the query paths rely on. The unique
// index on mycollection.toyId backs the one-document-per-toy upsert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := db.Collection("mycollection").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "toyId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("toys").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sellerEmail", Value: 1}}},
		{Keys: bson.D{{Key: "subCategory", Value: 1}}},
	})
	return err
}
