package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog post status values.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// IsValidStatus returns true if s is a recognized blog post status.
func IsValidStatus(s string) bool {
	return s == StatusPublished || s == StatusDraft
}

// DefaultStatus returns the status assigned when a post is stored without one.
func DefaultStatus() string {
	return StatusDraft
}

// MaxTitleLength is the longest title the blogs collection accepts.
const MaxTitleLength = 100

// BlogPost is a blog entry stored in the blogs collection.
//
// Title, Description, Category and ImageURL are required and stored trimmed.
// Status is always one of StatusPublished or StatusDraft. CreatedAt and
// UpdatedAt are maintained by the store layer; CreatedAt never changes after
// insert.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"         json:"title"`
	Description string             `bson:"description"   json:"description"`
	Category    string             `bson:"category"      json:"category"`
	ImageURL    string             `bson:"image_url"     json:"imageUrl"`
	Status      string             `bson:"status"        json:"status"`
	CreatedAt   time.Time          `bson:"created_at"    json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at"    json:"updatedAt"`
}
