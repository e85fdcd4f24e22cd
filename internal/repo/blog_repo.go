package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogapi/internal/model"
	appErr "blogapi/internal/pkg/errors"
)

type BlogRepo struct {
	collection *mongo.Collection
}

func NewBlogRepo(db *mongo.Database) (*BlogRepo, error) {
	collection := db.Collection("blogs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author_email", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return &BlogRepo{collection: collection}, nil
}

func (r *BlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, appErr.ErrNotFound
	}
	var blog model.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Update overwrites title, content and created_at and returns the updated
// document. The author fields are deliberately not part of the $set.
func (r *BlogRepo) Update(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	update := bson.M{
		"$set": bson.M{
			"title":      blog.Title,
			"content":    blog.Content,
			"created_at": blog.CreatedAt,
		},
	}
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": blog.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, appErr.ErrNotFound
		}
		return nil, result.Err()
	}
	var updated model.Blog
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return appErr.ErrNotFound
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *BlogRepo) List(ctx context.Context, skip, limit int64) ([]model.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *BlogRepo) ListByAuthorEmail(ctx context.Context, email string) ([]model.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"author_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
