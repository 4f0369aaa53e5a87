package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func newReviews() *service.ReviewService {
	return service.NewReviewService(service.NewRecipeService())
}

func TestAddReview(t *testing.T) {
	reviews := newReviews()
	userID := uuid.New()

	review, err := reviews.Add(userID, "alice", "greek salad", 5, "So fresh", "Perfect summer lunch.", true)
	assert.NoError(t, err)
	assert.Equal(t, "Greek Salad", review.RecipeName)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "alice", review.Username)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestAddReviewValidation(t *testing.T) {
	reviews := newReviews()
	userID := uuid.New()

	_, err := reviews.Add(userID, "alice", "Greek Salad", 0, "", "", false)
	assert.ErrorIs(t, err, service.ErrInvalidRating)

	_, err = reviews.Add(userID, "alice", "Greek Salad", 6, "", "", false)
	assert.ErrorIs(t, err, service.ErrInvalidRating)

	_, err = reviews.Add(userID, "alice", "Unicorn Stew", 4, "", "", false)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestAddReviewOncePerUser(t *testing.T) {
	reviews := newReviews()
	userID := uuid.New()

	_, err := reviews.Add(userID, "alice", "Beef Tacos", 4, "", "", true)
	assert.NoError(t, err)
	_, err = reviews.Add(userID, "alice", "Beef Tacos", 5, "", "", true)
	assert.ErrorIs(t, err, service.ErrDuplicateReview)

	// A different user may still review it.
	_, err = reviews.Add(uuid.New(), "bob", "Beef Tacos", 3, "", "", false)
	assert.NoError(t, err)
}

func TestReviewStats(t *testing.T) {
	reviews := newReviews()

	_, err := reviews.Add(uuid.New(), "alice", "Margherita Pizza", 5, "", "", true)
	assert.NoError(t, err)
	_, err = reviews.Add(uuid.New(), "bob", "Margherita Pizza", 4, "", "", true)
	assert.NoError(t, err)
	_, err = reviews.Add(uuid.New(), "carol", "Margherita Pizza", 3, "", "", false)
	assert.NoError(t, err)

	list, stats, err := reviews.ForRecipe("Margherita Pizza")
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 1, stats.RatingDistribution[5])
	assert.Equal(t, 1, stats.RatingDistribution[4])
	assert.Equal(t, 1, stats.RatingDistribution[3])
	assert.InDelta(t, 66.7, stats.WouldMakeAgainPct, 0.01)
}

func TestDeleteReviewOwnership(t *testing.T) {
	reviews := newReviews()
	owner := uuid.New()

	review, err := reviews.Add(owner, "alice", "Thai Green Curry", 4, "", "", true)
	assert.NoError(t, err)

	assert.ErrorIs(t, reviews.Delete(uuid.New(), review.ID), service.ErrNotReviewOwner)
	assert.NoError(t, reviews.Delete(owner, review.ID))
	assert.ErrorIs(t, reviews.Delete(owner, review.ID), service.ErrReviewNotFound)

	list, stats, err := reviews.ForRecipe("Thai Green Curry")
	assert.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, stats.TotalReviews)
}

func TestMarkHelpfulOncePerUser(t *testing.T) {
	reviews := newReviews()
	voter := uuid.New()

	review, err := reviews.Add(uuid.New(), "alice", "Vegetable Curry", 5, "", "", true)
	assert.NoError(t, err)

	updated, err := reviews.MarkHelpful(voter, review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.HelpfulCount)

	_, err = reviews.MarkHelpful(voter, review.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)

	updated, err = reviews.MarkHelpful(uuid.New(), review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.HelpfulCount)
}

func TestTopRecipes(t *testing.T) {
	reviews := newReviews()

	for i := 0; i < 3; i++ {
		_, err := reviews.Add(uuid.New(), "user", "Greek Salad", 5, "", "", true)
		assert.NoError(t, err)
		_, err = reviews.Add(uuid.New(), "user", "Beef Tacos", 3, "", "", false)
		assert.NoError(t, err)
	}
	_, err := reviews.Add(uuid.New(), "user", "Margherita Pizza", 5, "", "", true)
	assert.NoError(t, err)

	top := reviews.TopRecipes(10, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "Greek Salad", top[0].RecipeName)
	assert.Equal(t, 5.0, top[0].AverageRating)
	assert.Equal(t, "Beef Tacos", top[1].RecipeName)

	assert.Len(t, reviews.TopRecipes(1, 2), 1)
}
