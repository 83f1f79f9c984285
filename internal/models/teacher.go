package models

import "time"

// Teacher is an account document in the teacher collection. The username
// doubles as the Mongo _id, so role lookups are primary-key reads.
type Teacher struct {
	Username  string    `bson:"_id" json:"username"`
	FullName  string    `bson:"fullname" json:"fullname"`
	Role      string    `bson:"role" json:"role"`
	HPassword string    `bson:"password,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
