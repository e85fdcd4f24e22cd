package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single post. AuthorEmail is stamped once at creation and never
// changes afterwards; every mutation is authorized against it.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Author      string             `bson:"author" json:"author"`
	AuthorEmail string             `bson:"author_email" json:"authorEmail"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
