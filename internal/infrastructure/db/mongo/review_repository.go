package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reviewhub/review-system/internal/core/domain"
)

const reviewCollection = "reviews"

type MongoReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(reviewCollection)}
}

type mongoReview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RecipientID primitive.ObjectID `bson:"recipient_id"`
	ReviewerID  primitive.ObjectID `bson:"reviewer_id"`
	Feedback    string             `bson:"feedback"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	recipient, err := primitive.ObjectIDFromHex(review.RecipientID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	reviewer, err := primitive.ObjectIDFromHex(review.ReviewerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoReview{
		RecipientID: recipient,
		ReviewerID:  reviewer,
		Feedback:    review.Feedback,
		CreatedAt:   review.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoReviewRepository) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"recipient_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]domain.Review, len(docs))
	for i, mr := range docs {
		reviews[i] = domain.Review{
			ID:          mr.ID.Hex(),
			RecipientID: mr.RecipientID.Hex(),
			ReviewerID:  mr.ReviewerID.Hex(),
			Feedback:    mr.Feedback,
			CreatedAt:   unixToTime(mr.CreatedAt),
		}
	}
	return reviews, nil
}

func (r *MongoReviewRepository) DeleteByRecipient(ctx context.Context, recipientID string) (int64, error) {
	return r.deleteMany(ctx, "recipient_id", recipientID)
}

func (r *MongoReviewRepository) DeleteByReviewer(ctx context.Context, reviewerID string) (int64, error) {
	return r.deleteMany(ctx, "reviewer_id", reviewerID)
}

func (r *MongoReviewRepository) deleteMany(ctx context.Context, field, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{field: oid})
	if err != nil {
		return 0, fmt.Errorf("delete reviews by %s: %w", field, err)
	}
	return res.DeletedCount, nil
}
