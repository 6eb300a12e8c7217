package entities

// RatingField names one of the four review ratings.
type RatingField string

const (
	RatingQuality         RatingField = "quality"
	RatingResponsiveness  RatingField = "responsiveness"
	RatingDeliveredOnTime RatingField = "delivered_on_time"
	RatingOverallReview   RatingField = "overall_review"
)

const (
	RatingUnrated = 0
	RatingMax     = 5
)

func (f RatingField) Valid() bool {
	switch f {
	case RatingQuality, RatingResponsiveness, RatingDeliveredOnTime, RatingOverallReview:
		return true
	}
	return false
}

// Review is the performance record of one organization.
//
// It is keyed by organization name; two differently named organizations are always distinct.
// The record exists only while the organization has at least one project, and a recreated
// record starts unrated.
type Review struct {
	Organization    string `json:"organization"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Quality         int    `json:"quality"`
	Responsiveness  int    `json:"responsiveness"`
	DeliveredOnTime int    `json:"delivered_on_time"`
	OverallReview   int    `json:"overall_review"`
	Notes           string `json:"notes"`
}

// NewReviewFor snapshots the contact of the first project seen for the organization.
func NewReviewFor(p Project) Review {
	return Review{
		Organization: p.Organization,
		Name:         p.Contact,
		Email:        p.Email,
	}
}

// SetRating stores value for f. Unknown fields are ignored.
func (r *Review) SetRating(f RatingField, value int) {
	switch f {
	case RatingQuality:
		r.Quality = value
	case RatingResponsiveness:
		r.Responsiveness = value
	case RatingDeliveredOnTime:
		r.DeliveredOnTime = value
	case RatingOverallReview:
		r.OverallReview = value
	}
}
