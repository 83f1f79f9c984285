package db

import (
	"context"

	"github.com/edunotice/edunotice-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeacherCollection implements services.TeacherStore. Teacher documents
// are keyed by username, so FindOne is a primary-key read.
type TeacherCollection struct {
	collection *mongo.Collection
}

func NewTeacherCollection(db *mongo.Database) *TeacherCollection {
	return &TeacherCollection{collection: db.Collection("teacher")}
}

func (c *TeacherCollection) FindOne(ctx context.Context, username string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&teacher); err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (c *TeacherCollection) InsertOne(ctx context.Context, teacher *models.Teacher) error {
	_, err := c.collection.InsertOne(ctx, teacher)
	return err
}

func (c *TeacherCollection) Find(ctx context.Context) ([]models.Teacher, error) {
	projection := bson.D{
		{Key: "password", Value: 0},
	}
	cur, err := c.collection.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}

	return teachers, nil
}
