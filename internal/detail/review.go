package detail

import (
	"errors"
	"strings"
	"time"
)

// SuccessBannerDuration is how long the thank-you banner stays visible
// after a review is accepted.
const SuccessBannerDuration = 3 * time.Second

// ErrIncompleteReview rejects a submission with any field missing or an
// out-of-range rating.
var ErrIncompleteReview = errors.New("please fill in all fields and select a rating")

// ReviewForm holds a pending review submission for one product.
type ReviewForm struct {
	Rating int
	Title  string
	Body   string
	Name   string
	Email  string

	submittedAt time.Time
}

// Validate requires a 1..5 rating and every text field non-blank.
func (f *ReviewForm) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return ErrIncompleteReview
	}
	for _, v := range []string{f.Title, f.Body, f.Name, f.Email} {
		if strings.TrimSpace(v) == "" {
			return ErrIncompleteReview
		}
	}
	return nil
}

// MarkSubmitted clears the form fields and starts the success banner.
func (f *ReviewForm) MarkSubmitted(now time.Time) {
	*f = ReviewForm{submittedAt: now}
}

// SuccessVisible reports whether the thank-you banner should still show.
func (f *ReviewForm) SuccessVisible(now time.Time) bool {
	if f.submittedAt.IsZero() {
		return false
	}
	return now.Sub(f.submittedAt) < SuccessBannerDuration
}
