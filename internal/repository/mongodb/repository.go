package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/domain/models"
)

// Repository defines the interface for the secondary audit store.
type Repository interface {
	ArchiveDeletedEntry(ctx context.Context, archived models.ArchivedEntry) error
	SaveSnapshot(ctx context.Context, snapshot models.AuditSnapshot) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client        *mongo.Client
	dbName        string
	archiveColl   string
	snapshotsColl string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:        client,
		dbName:        dbName,
		archiveColl:   "deleted_entries",
		snapshotsColl: "audit_snapshots",
	}, nil
}

// ArchiveDeletedEntry stores a deleted audit entry for later recovery.
func (r *MongoDBRepository) ArchiveDeletedEntry(ctx context.Context, archived models.ArchivedEntry) error {
	collection := r.client.Database(r.dbName).Collection(r.archiveColl)
	if _, err := collection.InsertOne(ctx, archived); err != nil {
		return fmt.Errorf("failed to insert archived entry: %w", err)
	}
	return nil
}

// SaveSnapshot stores an audit snapshot document.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.AuditSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.snapshotsColl)
	if _, err := collection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
