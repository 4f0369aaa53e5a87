package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

// ReviewService stores recipe reviews and serves aggregate statistics.
type ReviewService struct {
	catalog *RecipeService

	mu       sync.RWMutex
	reviews  map[uuid.UUID]*models.Review
	byRecipe map[string][]uuid.UUID
	byUser   map[uuid.UUID][]uuid.UUID
	votes    map[uuid.UUID]map[uuid.UUID]bool
}

func NewReviewService(catalog *RecipeService) *ReviewService {
	return &ReviewService{
		catalog:  catalog,
		reviews:  make(map[uuid.UUID]*models.Review),
		byRecipe: make(map[string][]uuid.UUID),
		byUser:   make(map[uuid.UUID][]uuid.UUID),
		votes:    make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

// Add records a review. A user may review a recipe once; ratings are 1-5.
func (s *ReviewService) Add(userID uuid.UUID, username, recipeName string, rating int, title, comment string, wouldMakeAgain bool) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	recipe, err := s.catalog.Get(recipeName)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.byUser[userID] {
		if s.reviews[id].RecipeName == recipe.Name {
			return nil, ErrDuplicateReview
		}
	}

	review := &models.Review{
		ID:             uuid.New(),
		RecipeName:     recipe.Name,
		UserID:         userID,
		Username:       username,
		Rating:         rating,
		Title:          title,
		Comment:        comment,
		WouldMakeAgain: wouldMakeAgain,
		CreatedAt:      time.Now().UTC(),
	}
	s.reviews[review.ID] = review
	s.byRecipe[recipe.Name] = append(s.byRecipe[recipe.Name], review.ID)
	s.byUser[userID] = append(s.byUser[userID], review.ID)
	return review, nil
}

// Delete removes a review; only its author may delete it.
func (s *ReviewService) Delete(userID, reviewID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrNotReviewOwner
	}
	delete(s.reviews, reviewID)
	delete(s.votes, reviewID)
	s.byRecipe[review.RecipeName] = removeID(s.byRecipe[review.RecipeName], reviewID)
	s.byUser[userID] = removeID(s.byUser[userID], reviewID)
	return nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// ForRecipe returns a recipe's reviews, newest first, with aggregate stats.
func (s *ReviewService) ForRecipe(recipeName string) ([]models.Review, *models.ReviewStats, error) {
	recipe, err := s.catalog.Get(recipeName)
	if err != nil {
		return nil, nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]models.Review, 0, len(s.byRecipe[recipe.Name]))
	for _, id := range s.byRecipe[recipe.Name] {
		reviews = append(reviews, *s.reviews[id])
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, statsFor(recipe.Name, reviews), nil
}

func statsFor(recipeName string, reviews []models.Review) *models.ReviewStats {
	stats := &models.ReviewStats{
		RecipeName:         recipeName,
		TotalReviews:       len(reviews),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}
	sum, again := 0, 0
	for _, r := range reviews {
		sum += r.Rating
		stats.RatingDistribution[r.Rating]++
		if r.WouldMakeAgain {
			again++
		}
	}
	stats.AverageRating = round1(float64(sum) / float64(len(reviews)))
	stats.WouldMakeAgainPct = round1(float64(again) / float64(len(reviews)) * 100)
	return stats
}

// MarkHelpful records a helpful vote; one vote per user per review.
func (s *ReviewService) MarkHelpful(userID, reviewID uuid.UUID) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, ErrReviewNotFound
	}
	if s.votes[reviewID] == nil {
		s.votes[reviewID] = make(map[uuid.UUID]bool)
	}
	if s.votes[reviewID][userID] {
		return nil, ErrAlreadyVoted
	}
	s.votes[reviewID][userID] = true
	review.HelpfulCount++
	copied := *review
	return &copied, nil
}

// TopRecipe pairs a recipe name with its aggregate stats for ranking.
type TopRecipe struct {
	RecipeName    string  `json:"recipe_name"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

// TopRecipes ranks recipes by average rating, requiring at least
// minReviews reviews each. Limit <= 0 means no limit.
func (s *ReviewService) TopRecipes(limit, minReviews int) []TopRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []TopRecipe
	for _, recipe := range s.catalog.List() {
		ids := s.byRecipe[recipe.Name]
		if len(ids) < minReviews {
			continue
		}
		sum := 0
		for _, id := range ids {
			sum += s.reviews[id].Rating
		}
		out = append(out, TopRecipe{
			RecipeName:    recipe.Name,
			AverageRating: round1(float64(sum) / float64(len(ids))),
			TotalReviews:  len(ids),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
