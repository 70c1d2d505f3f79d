package configs

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client     *mongo.Client
	clientOnce sync.Once
)

func ConnectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	return c
}

// DB returns the shared client, connecting on first use.
func DB() *mongo.Client {
	clientOnce.Do(func() {
		client = ConnectDB()
	})
	return client
}

func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(EnvDatabaseName()).Collection(collectionName)
}

// WithTransaction runs fn inside a session transaction on the shared client.
func WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := DB().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}

// EnsureIndexes creates the uniqueness constraints the handlers rely on.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"payments": {
			{Keys: bson.D{{Key: "txnid", Value: 1}}, Options: unique},
			// one payment record per order
			{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: unique},
		},
		"stocknotifications": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}}, Options: unique},
		},
		"categories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"orders": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "shippingAddressId", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := GetCollection(DB(), name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
