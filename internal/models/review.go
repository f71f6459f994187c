package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a client testimonial awaiting or having received moderator
// approval. Immutable after insert except for the Approved flag, which is
// flipped only through the moderation route.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,max=100"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=100"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email,max=255"`
	Product   string             `json:"product" bson:"product" validate:"required"`
	Rating    int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment   string             `json:"comment" bson:"comment" validate:"required,max=1000"`
	ImageURL  string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Approved  bool               `json:"approved" bson:"approved"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// PublicReview is the read projection served to the site. Email is private
// and never leaves the backend; the reviews_public view enforces the same
// shape at the database layer.
type PublicReview struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Product   string             `json:"product" bson:"product"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	ImageURL  string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// PublicView projects a stored review onto its public shape.
func (r *Review) PublicView() *PublicReview {
	return &PublicReview{
		ID:        r.ID,
		Name:      r.Name,
		Location:  r.Location,
		Product:   r.Product,
		Rating:    r.Rating,
		Comment:   r.Comment,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
	}
}

// RatingSummary aggregates approved reviews for the listing page header.
type RatingSummary struct {
	Average      float64       `json:"average"`
	Total        int64         `json:"total"`
	Distribution map[int]int64 `json:"distribution"`
}
