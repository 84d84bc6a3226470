package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// mongoResumeRepository stores each record as a document {_id, data}.
type mongoResumeRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

func openMongo(ctx context.Context, cfg common.StoreConfig, collection string, logger *slog.Logger) (*mongoResumeRepository, error) {
	logger.Info("connecting to database", "driver", "mongo", "database", cfg.Database)

	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.DSN).
		SetServerSelectionTimeout(dial).
		SetConnectTimeout(dial)
	if cfg.MaxConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxConns))
	}
	if cfg.MinConns > 0 {
		opts.SetMinPoolSize(uint64(cfg.MinConns))
	}
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, common.PersistenceError("connect to mongodb", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("failed to ping database", "error", err)
		return nil, common.PersistenceError("ping mongodb", err)
	}

	logger.Info("successfully connected to database", "driver", "mongo")
	return &mongoResumeRepository{
		client:     client,
		collection: client.Database(cfg.Database).Collection(collection),
		logger:     logger,
	}, nil
}

// Migrate creates the collection explicitly so a fresh database reports it.
func (r *mongoResumeRepository) Migrate(ctx context.Context) error {
	db := r.collection.Database()
	names, err := db.ListCollectionNames(ctx, bson.M{"name": r.collection.Name()})
	if err != nil {
		return common.PersistenceError("list collections", err)
	}
	if len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, r.collection.Name()); err != nil {
		r.logger.Error("failed to create resumes collection", "collection", r.collection.Name(), "error", err)
		return common.PersistenceError("create resumes collection", err)
	}
	r.logger.Info("resumes collection ready", "collection", r.collection.Name())
	return nil
}

func (r *mongoResumeRepository) Insert(ctx context.Context, rec entity.Resume) (string, error) {
	doc := entity.StoredResume{ID: uuid.NewString(), Data: rec}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("failed to insert resume", "error", err)
		return "", common.PersistenceError("insert resume", err)
	}
	return doc.ID, nil
}

func (r *mongoResumeRepository) GetByID(ctx context.Context, id string) (entity.Resume, error) {
	var doc entity.StoredResume
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.Resume{}, common.NotFoundErrorf("resume %s not found", id)
	}
	if err != nil {
		r.logger.Error("failed to find resume", "id", id, "error", err)
		return entity.Resume{}, common.PersistenceError("find resume", err)
	}
	doc.Data.Normalize()
	return doc.Data, nil
}

func (r *mongoResumeRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return common.PersistenceError("ping mongodb", err)
	}
	return nil
}

func (r *mongoResumeRepository) Close() error {
	r.logger.Info("closing database connections", "driver", "mongo")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}
