package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"volunteerhub/models"
)

// ErrNotFound is returned by single-document lookups that match nothing.
var ErrNotFound = errors.New("not found")

// ListOpts controls the paginated post search. Search is an empty-ok
// substring matched case-insensitively against the title; an empty
// string matches every post. Skip is Page*Size and neither value is
// bounds-checked.
type ListOpts struct {
	Search string
	Page   int64
	Size   int64
}

// UpsertResult reports what an update-with-upsert did.
type UpsertResult struct {
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId,omitempty"`
}

type PostStore interface {
	InsertPost(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	ListPosts(ctx context.Context, opts ListOpts) ([]models.Post, error)
	AllPosts(ctx context.Context) ([]models.Post, error)
	// UpcomingPosts returns at most limit posts ordered by ascending deadline.
	UpcomingPosts(ctx context.Context, limit int64) ([]models.Post, error)
	GetPost(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	PostsByOrganizer(ctx context.Context, email string) ([]models.Post, error)
	// UpsertPost applies a field-level $set, creating the document with
	// the given id when it does not exist.
	UpsertPost(ctx context.Context, id primitive.ObjectID, post *models.Post) (UpsertResult, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error)
	// AdjustRequestCount atomically adds delta to a post's request_count
	// and reports how many documents matched. The counter has no floor.
	AdjustRequestCount(ctx context.Context, postID primitive.ObjectID, delta int64) (int64, error)
}

type RequestStore interface {
	// FindRequest looks up an application by (email, postId); ErrNotFound
	// means the pair has not applied yet.
	FindRequest(ctx context.Context, email, postID string) (models.Request, error)
	InsertRequest(ctx context.Context, req *models.Request) (primitive.ObjectID, error)
	RequestsByEmail(ctx context.Context, email string) ([]models.Request, error)
	DeleteRequest(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Store interface {
	PostStore
	RequestStore
}
