package mongodb

import (
	"context"
	"fmt"
	"math"
	"time"

	"neuraflow/internal/models"
	"neuraflow/internal/repositories/interfaces"
	"neuraflow/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
	publicView *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) interfaces.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(utils.CollectionReviews),
		publicView: db.Collection(utils.CollectionReviewsPublic),
	}
}

// Create inserts a new review. The approved flag is forced to false here
// regardless of what the caller set; only SetApproved flips it.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	review.Approved = false
	review.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// ListApproved reads the reviews_public view, so only approved rows without
// the email field can ever be returned.
func (r *reviewRepository) ListApproved(ctx context.Context, params *utils.ReviewListParams) ([]*models.PublicReview, int64, error) {
	filter := bson.M{}
	if params.Product != "" {
		filter["product"] = params.Product
	}

	total, err := r.publicView.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	opts := options.Find().
		SetSort(reviewSortOrder(params.Sort)).
		SetSkip(int64(params.GetSkip())).
		SetLimit(int64(params.GetLimit()))

	cursor, err := r.publicView.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.PublicReview
	for cursor.Next(ctx) {
		var review models.PublicReview
		if err := cursor.Decode(&review); err != nil {
			return nil, 0, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}

func (r *reviewRepository) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approved": approved}},
	)
	if err != nil {
		return fmt.Errorf("failed to update review approval: %w", err)
	}

	if result.MatchedCount == 0 {
		return interfaces.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) GetRatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.publicView.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating summary: %w", err)
	}
	defer cursor.Close(ctx)

	summary := &models.RatingSummary{
		Distribution: make(map[int]int64),
	}

	var weighted int64
	for cursor.Next(ctx) {
		var result struct {
			ID    int   `bson:"_id"`
			Count int64 `bson:"count"`
		}

		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode rating summary: %w", err)
		}

		summary.Distribution[result.ID] = result.Count
		summary.Total += result.Count
		weighted += int64(result.ID) * result.Count
	}

	if summary.Total > 0 {
		avg := float64(weighted) / float64(summary.Total)
		summary.Average = math.Round(avg*100) / 100
	}

	return summary, nil
}

// reviewSortOrder maps a listing sort mode onto a Mongo sort document.
// Rating sorts break ties by creation time descending so the ordering is
// stable across pages.
func reviewSortOrder(sort string) bson.D {
	switch sort {
	case utils.SortHighest:
		return bson.D{{Key: "rating", Value: -1}, {Key: "created_at", Value: -1}}
	case utils.SortLowest:
		return bson.D{{Key: "rating", Value: 1}, {Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
