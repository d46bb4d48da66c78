// Package blogstore provides access to the blogs collection.
//
// Field constraints (requiredness, trimming, title length, status values)
// are enforced here, at the store layer, so every write path gets the same
// validation regardless of which handler issued it.
package blogstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inkpost/inkpost/internal/app/store/storeutil"
	"github.com/inkpost/inkpost/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for blog posts.
const CollectionName = "blogs"

var (
	// ErrInvalidID means the identifier is not a well-formed ObjectID hex
	// string. Distinguished from ErrNotFound so callers can report a
	// malformed identifier differently from an absent record.
	ErrInvalidID = errors.New("invalid blog id")

	// ErrNotFound means no blog post has the given id.
	ErrNotFound = errors.New("blog not found")
)

// ValidationError reports field constraint violations, one message per
// offending field.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single field constraint violation.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the per-field messages in field order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return msgs
}

// Store provides access to the blogs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Filter narrows List results. Zero-value fields impose no constraint.
type Filter struct {
	Status   string
	Category string
}

// List returns all posts matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.BlogPost, error) {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Category != "" {
		query["category"] = f.Category
	}

	opts := storeutil.NewestFirst("created_at")
	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns one post. Returns ErrInvalidID for a malformed identifier
// and ErrNotFound when no post has the id.
func (s *Store) GetByID(ctx context.Context, id string) (models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.BlogPost{}, ErrInvalidID
	}

	var post models.BlogPost
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Create validates and inserts a post, returning it with id and timestamps
// assigned. An empty status is defaulted to draft before validation.
func (s *Store) Create(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	post.Title = strings.TrimSpace(post.Title)
	post.Description = strings.TrimSpace(post.Description)
	post.Category = strings.TrimSpace(post.Category)
	post.ImageURL = strings.TrimSpace(post.ImageURL)
	if post.Status == "" {
		post.Status = models.DefaultStatus()
	}

	if err := validate(post); err != nil {
		return models.BlogPost{}, err
	}

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Patch holds the mutable fields of an update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	ImageURL    *string
	Status      *string
}

// Update confirms the post exists, re-validates every touched field, applies
// the patch and returns the post-update document. Identifier errors mirror
// GetByID.
func (s *Store) Update(ctx context.Context, id string, p Patch) (models.BlogPost, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.BlogPost{}, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Title != nil {
		set["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		set["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		set["category"] = strings.TrimSpace(*p.Category)
	}
	if p.ImageURL != nil {
		set["image_url"] = strings.TrimSpace(*p.ImageURL)
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}

	if err := validatePatch(set); err != nil {
		return models.BlogPost{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.BlogPost
	err = s.c.FindOneAndUpdate(ctx, bson.M{"_id": current.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return updated, nil
}

// Delete confirms the post exists and removes it. Identifier errors mirror
// GetByID; deleting an already-deleted post returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": current.ID})
	return err
}

// EnsureIndexes creates the indexes the list queries rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create blogs indexes: %w", err)
	}
	return nil
}

// validate checks the full document before insert.
func validate(post models.BlogPost) error {
	var ve ValidationError

	checkRequired(&ve, "title", post.Title)
	if post.Title != "" && len([]rune(post.Title)) > models.MaxTitleLength {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title cannot exceed %d characters", models.MaxTitleLength),
		})
	}
	checkRequired(&ve, "description", post.Description)
	checkRequired(&ve, "category", post.Category)
	checkRequired(&ve, "imageUrl", post.ImageURL)
	if !models.IsValidStatus(post.Status) {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   "status",
			Message: "status must be either published or draft",
		})
	}

	if len(ve.Fields) > 0 {
		return &ve
	}
	return nil
}

// validatePatch checks only the fields an update touches.
func validatePatch(set bson.M) error {
	var ve ValidationError

	// Fixed order keeps the per-field messages stable across runs.
	fieldLabels := []struct {
		key   string
		label string
	}{
		{"title", "title"},
		{"description", "description"},
		{"category", "category"},
		{"image_url", "imageUrl"},
	}
	for _, f := range fieldLabels {
		key, label := f.key, f.label
		v, ok := set[key]
		if !ok {
			continue
		}
		s, _ := v.(string)
		if s == "" {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   label,
				Message: label + " is required",
			})
		}
	}
	if title, ok := set["title"].(string); ok && len([]rune(title)) > models.MaxTitleLength {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title cannot exceed %d characters", models.MaxTitleLength),
		})
	}
	if status, ok := set["status"].(string); ok && !models.IsValidStatus(status) {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   "status",
			Message: "status must be either published or draft",
		})
	}

	if len(ve.Fields) > 0 {
		return &ve
	}
	return nil
}

func checkRequired(ve *ValidationError, field, value string) {
	if value == "" {
		ve.Fields = append(ve.Fields, FieldError{Field: field, Message: field + " is required"})
	}
}
