package db

import (
	"context"

	"github.com/edunotice/edunotice-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnnouncementCollection implements services.AnnouncementStore on top of a
// MongoDB collection. Documents are keyed by store-assigned ObjectIDs; the
// hex string handed to callers at insert time is the only id representation
// the update and delete paths accept back.
type AnnouncementCollection struct {
	collection *mongo.Collection
}

func NewAnnouncementCollection(db *mongo.Database) *AnnouncementCollection {
	return &AnnouncementCollection{collection: db.Collection("announcement")}
}

func (c *AnnouncementCollection) Find(ctx context.Context, filter bson.M) ([]models.Announcement, error) {
	cur, err := c.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var announcements []models.Announcement
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}

	return announcements, nil
}

func (c *AnnouncementCollection) InsertOne(ctx context.Context, announcement *models.Announcement) (string, error) {
	announcement.ID = primitive.NewObjectID()

	result, err := c.collection.InsertOne(ctx, announcement)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (c *AnnouncementCollection) UpdateOne(ctx context.Context, id string, fields bson.M) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a hex ObjectID, so it cannot match anything the store
		// assigned. Report zero matches rather than an error.
		return 0, nil
	}

	result, err := c.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (c *AnnouncementCollection) DeleteOne(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := c.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
