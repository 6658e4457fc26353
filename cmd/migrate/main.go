package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/light-bringer/optics-service/internal/models/m_cart"
	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/models/m_user"
)

var (
	mongoURI = flag.String("uri", "", "MongoDB connection URI (default $MONGODB_URI)")
	dbName   = flag.String("database", "", "MongoDB database name (default $MONGODB_DATABASE)")
	dryRun   = flag.Bool("dry-run", false, "List the indexes without creating them")
	timeout  = flag.Duration("timeout", 30*time.Second, "Overall migration timeout")
)

// indexSpec is one index to ensure on a collection.
type indexSpec struct {
	Collection string
	Keys       bson.D
	Name       string
	Unique     bool
}

// indexes are the indexes the service relies on. The unique ones back the
// insert-if-absent semantics of user registration and add-to-cart.
var indexes = []indexSpec{
	{
		Collection: m_user.CollectionName,
		Keys:       bson.D{{Key: m_user.Email, Value: 1}},
		Name:       "email_unique",
		Unique:     true,
	},
	{
		Collection: m_cart.CollectionName,
		Keys:       bson.D{{Key: m_cart.Email, Value: 1}, {Key: m_cart.ProductID, Value: 1}},
		Name:       "email_product_unique",
		Unique:     true,
	},
	{
		Collection: m_order.CollectionName,
		Keys:       bson.D{{Key: m_order.PaymentStatus, Value: 1}},
		Name:       "payment_status",
	},
	{
		Collection: m_order.CollectionName,
		Keys:       bson.D{{Key: m_order.CustomerEmail, Value: 1}, {Key: m_order.Date, Value: -1}},
		Name:       "customer_date",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	flag.Parse()

	if *mongoURI == "" {
		*mongoURI = getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017")
	}
	if *dbName == "" {
		*dbName = getEnvOrDefault("MONGODB_DATABASE", "KashemDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

func run(ctx context.Context) error {
	if *dryRun {
		for _, spec := range indexes {
			log.Printf("[dry-run] %s", describe(spec))
		}
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Warning: disconnect failed: %v", err)
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(*dbName)
	for _, spec := range indexes {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, indexModel(spec))
		if err != nil {
			return fmt.Errorf("failed to create index %s.%s: %w", spec.Collection, spec.Name, err)
		}
		log.Printf("Ensured index %s.%s", spec.Collection, name)
	}

	return nil
}

func indexModel(spec indexSpec) mongo.IndexModel {
	opts := options.Index().SetName(spec.Name)
	if spec.Unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: spec.Keys, Options: opts}
}

func describe(spec indexSpec) string {
	kind := "index"
	if spec.Unique {
		kind = "unique index"
	}
	return fmt.Sprintf("%s %s on %s %v", kind, spec.Name, spec.Collection, spec.Keys)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
