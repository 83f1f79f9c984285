package services

import (
	"context"

	"github.com/edunotice/edunotice-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AnnouncementStore is the persistence surface the announcement service
// needs. The Mongo-backed implementation lives in internal/db; tests
// substitute an in-memory fake.
type AnnouncementStore interface {
	// Find returns every announcement matching the filter, in store
	// iteration order. The order is not guaranteed stable across calls.
	Find(ctx context.Context, filter bson.M) ([]models.Announcement, error)
	// InsertOne stores a new announcement and returns the hex form of the
	// id the store assigned.
	InsertOne(ctx context.Context, announcement *models.Announcement) (string, error)
	// UpdateOne applies a $set of fields to the announcement with the
	// given hex id and reports how many documents matched. An id that
	// could not have been assigned by the store matches zero documents.
	UpdateOne(ctx context.Context, id string, fields bson.M) (int64, error)
	// DeleteOne removes the announcement with the given hex id and
	// reports how many documents were deleted.
	DeleteOne(ctx context.Context, id string) (int64, error)
}

// TeacherStore is the persistence surface for teacher accounts. FindOne
// returns mongo.ErrNoDocuments when no account has the given username.
type TeacherStore interface {
	FindOne(ctx context.Context, username string) (*models.Teacher, error)
	InsertOne(ctx context.Context, teacher *models.Teacher) error
	Find(ctx context.Context) ([]models.Teacher, error)
}
