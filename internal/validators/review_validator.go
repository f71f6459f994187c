package validators

import (
	"strings"

	"neuraflow/internal/models"
)

// ReviewSubmitRequest is the raw submission draft from the review form.
type ReviewSubmitRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Location   string `json:"location" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Product    string `json:"product" validate:"required,service_product"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=1000"`
	ImageURL   string `json:"image_url" validate:"omitempty,http_url"`
	Authorized bool   `json:"authorized"`
}

// Normalize trims the text fields so that whitespace-only input is treated
// as empty. Optional empty fields stay empty and are omitted at persistence.
func (r *ReviewSubmitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Email = strings.TrimSpace(r.Email)
	r.Comment = strings.TrimSpace(r.Comment)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// ValidateReviewSubmit normalizes the draft and checks every rule
// independently, collecting all violations. It never touches the store.
func ValidateReviewSubmit(req *ReviewSubmitRequest) ValidationErrors {
	req.Normalize()
	return ValidateStruct(req)
}

// ToReview maps a validated draft onto the persisted record. Approved always
// starts false; only moderation flips it.
func (r *ReviewSubmitRequest) ToReview() *models.Review {
	return &models.Review{
		Name:     r.Name,
		Location: r.Location,
		Email:    r.Email,
		Product:  r.Product,
		Rating:   r.Rating,
		Comment:  r.Comment,
		ImageURL: r.ImageURL,
		Approved: false,
	}
}
