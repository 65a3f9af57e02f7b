package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"volunteerhub/models"
)

// Mongo is the production Store backed by the posts and requests
// collections of a single database.
type Mongo struct {
	posts    *mongo.Collection
	requests *mongo.Collection
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	db := client.Database(dbName)
	return &Mongo{
		posts:    db.Collection("posts"),
		requests: db.Collection("requests"),
	}
}

func (m *Mongo) InsertPost(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	post.ID = primitive.NewObjectID()
	if _, err := m.posts.InsertOne(ctx, post); err != nil {
		return primitive.NilObjectID, err
	}
	return post.ID, nil
}

func (m *Mongo) ListPosts(ctx context.Context, opts ListOpts) ([]models.Post, error) {
	// An empty search pattern matches every title.
	filter := bson.M{
		"title": primitive.Regex{Pattern: opts.Search, Options: "i"},
	}
	findOpts := options.Find().
		SetSkip(opts.Page * opts.Size).
		SetLimit(opts.Size)

	cursor, err := m.posts.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) AllPosts(ctx context.Context) ([]models.Post, error) {
	cursor, err := m.posts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) UpcomingPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "deadline", Value: 1}}).
		SetLimit(limit)

	cursor, err := m.posts.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) GetPost(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := m.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (m *Mongo) PostsByOrganizer(ctx context.Context, email string) ([]models.Post, error) {
	cursor, err := m.posts.Find(ctx, bson.M{"organizer.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) UpsertPost(ctx context.Context, id primitive.ObjectID, post *models.Post) (UpsertResult, error) {
	fields := bson.M{
		"title":     post.Title,
		"deadline":  post.Deadline,
		"organizer": post.Organizer,
	}
	if post.Thumbnail != "" {
		fields["thumbnail"] = post.Thumbnail
	}
	if post.Description != "" {
		fields["description"] = post.Description
	}
	if post.Category != "" {
		fields["category"] = post.Category
	}
	if post.Location != "" {
		fields["location"] = post.Location
	}
	if post.VolunteersNeeded != 0 {
		fields["volunteersNeeded"] = post.VolunteersNeeded
	}

	res, err := m.posts.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpsertResult{}, err
	}

	result := UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.UpsertedID = &oid
	}
	return result, nil
}

func (m *Mongo) DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) AdjustRequestCount(ctx context.Context, postID primitive.ObjectID, delta int64) (int64, error) {
	res, err := m.posts.UpdateOne(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"request_count": delta}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *Mongo) FindRequest(ctx context.Context, email, postID string) (models.Request, error) {
	var req models.Request
	err := m.requests.FindOne(ctx, bson.M{"email": email, "postId": postID}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Request{}, ErrNotFound
	}
	if err != nil {
		return models.Request{}, err
	}
	return req, nil
}

func (m *Mongo) InsertRequest(ctx context.Context, req *models.Request) (primitive.ObjectID, error) {
	req.ID = primitive.NewObjectID()
	if _, err := m.requests.InsertOne(ctx, req); err != nil {
		return primitive.NilObjectID, err
	}
	return req.ID, nil
}

func (m *Mongo) RequestsByEmail(ctx context.Context, email string) ([]models.Request, error) {
	cursor, err := m.requests.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.Request
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (m *Mongo) DeleteRequest(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.requests.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
