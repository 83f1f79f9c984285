package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Date and timestamp layouts used on the wire and inside the database.
// Announcement visibility is decided by comparing expiration_date with
// today's date as strings, which is only correct because both sides are
// fixed-width YYYY-MM-DD. Any other date format breaks the ordering.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Announcement represents an announcement document in the MongoDB database.
// StartDate is optional; nil means the announcement is visible from the
// moment it is created.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message        string             `bson:"message" json:"message"`
	StartDate      *string            `bson:"start_date,omitempty" json:"start_date,omitempty"`
	ExpirationDate string             `bson:"expiration_date" json:"expiration_date"`
	CreatedAt      string             `bson:"created_at" json:"created_at"`
	UpdatedAt      string             `bson:"updated_at" json:"updated_at"`
}

// AnnouncementPatch carries a partial update. A nil field means "leave the
// stored value untouched"; there is no way to clear a field to empty, only
// to replace it.
type AnnouncementPatch struct {
	Message        *string `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate *string `json:"expiration_date"`
}
