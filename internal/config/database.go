package config

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/freightlink/profile-api/internal/logging"
	"github.com/freightlink/profile-api/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Ping the database
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Wrap with traced client
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI masks credentials embedded in a MongoDB URI
func maskMongoURI(uri string) string {
	if !strings.Contains(uri, "@") {
		return uri
	}
	return "mongodb://****:****@" + uri[strings.LastIndex(uri, "@")+1:]
}

// ensureIndexes creates required indexes if they don't exist
func ensureIndexes() error {
	logger := zap.L().Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureUniqueIndex(ctx, logger, AppConfig.DriverProfileCollection, "driver_id"); err != nil {
		return err
	}
	if err := ensureApplicationIndexes(ctx, logger); err != nil {
		return err
	}
	if err := ensureUniqueIndex(ctx, logger, AppConfig.VerificationCollection, "driver_id"); err != nil {
		return err
	}

	logger.Info("all required indexes verified")
	return nil
}

// ensureUniqueIndex creates a unique single-field index on the given collection
func ensureUniqueIndex(ctx context.Context, logger *zap.Logger, collectionName, field string) error {
	collection := MongoDB.Collection(collectionName)
	indexName := field + "_1"

	exists, err := indexExists(ctx, collection, indexName)
	if err != nil {
		logger.Error("failed to list indexes", zap.Error(err))
		return err
	}
	if exists {
		logger.Debug("index already exists",
			zap.String("collection", collectionName),
			zap.String("index", indexName))
		return nil
	}

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: 1}},
		Options: options.Index().
			SetName(indexName).
			SetUnique(true),
	}

	_, err = collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		// Another instance may have created it concurrently
		if mongo.IsDuplicateKeyError(err) {
			logger.Info("index already exists (created by another instance)",
				zap.String("collection", collectionName))
			return nil
		}
		logger.Error("failed to create index",
			zap.String("collection", collectionName),
			zap.Error(err))
		return err
	}

	logger.Info("created index",
		zap.String("collection", collectionName),
		zap.String("index", indexName))
	return nil
}

// ensureApplicationIndexes creates the indexes for the applications collection
func ensureApplicationIndexes(ctx context.Context, logger *zap.Logger) error {
	collection := MongoDB.Collection(AppConfig.ApplicationCollection)

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existingIndexes := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existingIndexes[name] = true
		}
	}

	indexesToCreate := []mongo.IndexModel{}

	// 1. Unique compound index: one application per driver per job
	if !existingIndexes["job_id_1_driver_id_1"] {
		indexesToCreate = append(indexesToCreate, mongo.IndexModel{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "driver_id", Value: 1}},
			Options: options.Index().
				SetName("job_id_1_driver_id_1").
				SetUnique(true),
		})
	}

	// 2. Index on job_id for applicant listings
	if !existingIndexes["job_id_1"] {
		indexesToCreate = append(indexesToCreate, mongo.IndexModel{
			Keys:    bson.D{{Key: "job_id", Value: 1}},
			Options: options.Index().SetName("job_id_1"),
		})
	}

	// 3. Index on current_status for filtered listings
	if !existingIndexes["current_status_1"] {
		indexesToCreate = append(indexesToCreate, mongo.IndexModel{
			Keys:    bson.D{{Key: "current_status", Value: 1}},
			Options: options.Index().SetName("current_status_1"),
		})
	}

	for _, indexModel := range indexesToCreate {
		_, err = collection.Indexes().CreateOne(ctx, indexModel)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("applications index already exists (created by another instance)",
					zap.String("collection", AppConfig.ApplicationCollection))
				continue
			}
			logger.Error("failed to create applications index",
				zap.String("collection", AppConfig.ApplicationCollection),
				zap.Error(err))
			return err
		}
	}

	if len(indexesToCreate) > 0 {
		logger.Info("created applications collection indexes",
			zap.String("collection", AppConfig.ApplicationCollection),
			zap.Int("count", len(indexesToCreate)))
	} else {
		logger.Debug("applications collection indexes already exist",
			zap.String("collection", AppConfig.ApplicationCollection))
	}

	return nil
}

// indexExists reports whether the named index exists on the collection
func indexExists(ctx context.Context, collection *mongo.Collection, name string) (bool, error) {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if n, ok := index["name"].(string); ok && n == name {
			return true, nil
		}
	}
	return false, nil
}
