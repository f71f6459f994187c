package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitRequest() *ReviewSubmitRequest {
	return &ReviewSubmitRequest{
		Name:       "Priya Sharma",
		Location:   "Mumbai, India",
		Email:      "priya@example.com",
		Product:    "AI Chatbots & Automation",
		Rating:     5,
		Comment:    "The chatbot cut our response time in half.",
		Authorized: true,
	}
}

func TestValidateReviewSubmit_Valid(t *testing.T) {
	errs := ValidateReviewSubmit(validSubmitRequest())
	assert.Empty(t, errs)
}

func TestValidateReviewSubmit_OptionalFieldsEmpty(t *testing.T) {
	req := validSubmitRequest()
	req.Location = ""
	req.Email = ""
	req.ImageURL = ""

	errs := ValidateReviewSubmit(req)
	assert.Empty(t, errs)
}

func TestValidateReviewSubmit_FieldErrors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *ReviewSubmitRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing name",
			mutate:      func(r *ReviewSubmitRequest) { r.Name = "" },
			wantField:   "name",
			wantMessage: "Name is required",
		},
		{
			name:        "whitespace only name",
			mutate:      func(r *ReviewSubmitRequest) { r.Name = "   " },
			wantField:   "name",
			wantMessage: "Name is required",
		},
		{
			name:        "name too long",
			mutate:      func(r *ReviewSubmitRequest) { r.Name = strings.Repeat("a", 101) },
			wantField:   "name",
			wantMessage: "Name must be at most 100 characters",
		},
		{
			name:        "missing product",
			mutate:      func(r *ReviewSubmitRequest) { r.Product = "" },
			wantField:   "product",
			wantMessage: "Please select a service",
		},
		{
			name:        "product not in catalog",
			mutate:      func(r *ReviewSubmitRequest) { r.Product = "Time Travel Consulting" },
			wantField:   "product",
			wantMessage: "Please select a service",
		},
		{
			name:        "rating missing",
			mutate:      func(r *ReviewSubmitRequest) { r.Rating = 0 },
			wantField:   "rating",
			wantMessage: "Please select a rating",
		},
		{
			name:        "rating above range",
			mutate:      func(r *ReviewSubmitRequest) { r.Rating = 6 },
			wantField:   "rating",
			wantMessage: "Please select a rating",
		},
		{
			name:        "missing comment",
			mutate:      func(r *ReviewSubmitRequest) { r.Comment = "" },
			wantField:   "comment",
			wantMessage: "Review text is required",
		},
		{
			name:        "comment too long",
			mutate:      func(r *ReviewSubmitRequest) { r.Comment = strings.Repeat("x", 1001) },
			wantField:   "comment",
			wantMessage: "Review must be at most 1000 characters",
		},
		{
			name:        "invalid email",
			mutate:      func(r *ReviewSubmitRequest) { r.Email = "not-an-email" },
			wantField:   "email",
			wantMessage: "Invalid email address",
		},
		{
			name:        "invalid image url",
			mutate:      func(r *ReviewSubmitRequest) { r.ImageURL = "ftp://example.com/pic.png" },
			wantField:   "image_url",
			wantMessage: "Invalid URL format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(req)

			errs := ValidateReviewSubmit(req)
			require.NotEmpty(t, errs)

			fields := errs.Fields()
			assert.Equal(t, tt.wantMessage, fields[tt.wantField])
		})
	}
}

func TestValidateReviewSubmit_CollectsAllErrors(t *testing.T) {
	req := &ReviewSubmitRequest{Authorized: true}

	errs := ValidateReviewSubmit(req)
	fields := errs.Fields()

	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Please select a service", fields["product"])
	assert.Equal(t, "Please select a rating", fields["rating"])
	assert.Equal(t, "Review text is required", fields["comment"])
}

func TestValidateReviewSubmit_CommentAtLimit(t *testing.T) {
	req := validSubmitRequest()
	req.Comment = strings.Repeat("x", 1000)

	errs := ValidateReviewSubmit(req)
	assert.Empty(t, errs)
}

func TestNormalize_TrimsFields(t *testing.T) {
	req := validSubmitRequest()
	req.Name = "  Priya Sharma  "
	req.Comment = "\tGreat service.\n"

	req.Normalize()

	assert.Equal(t, "Priya Sharma", req.Name)
	assert.Equal(t, "Great service.", req.Comment)
}

func TestToReview_StartsUnapproved(t *testing.T) {
	req := validSubmitRequest()

	review := req.ToReview()

	assert.False(t, review.Approved)
	assert.Equal(t, req.Name, review.Name)
	assert.Equal(t, req.Product, review.Product)
	assert.Equal(t, req.Rating, review.Rating)
	assert.Equal(t, req.Comment, review.Comment)
}
