package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID             uuid.UUID `json:"id"`
	RecipeName     string    `json:"recipe_name"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Rating         int       `json:"rating"`
	Title          string    `json:"title,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	WouldMakeAgain bool      `json:"would_make_again"`
	HelpfulCount   int       `json:"helpful_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReviewStats is the aggregate view over all reviews of one recipe.
type ReviewStats struct {
	RecipeName         string      `json:"recipe_name"`
	TotalReviews       int         `json:"total_reviews"`
	AverageRating      float64     `json:"average_rating"`
	RatingDistribution map[int]int `json:"rating_distribution"`
	WouldMakeAgainPct  float64     `json:"would_make_again_percentage"`
}
