package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

// challengeRewards maps each challenge type to the badges earned on completion.
var challengeRewards = map[string][]string{
	models.ChallengeWeeklyRecipe:    {"Recipe Explorer Badge", "50 points"},
	models.ChallengeTechniqueMaster: {"Technique Master Badge", "100 points"},
	models.ChallengeCuisineExplorer: {"World Cuisine Badge", "75 points"},
	models.ChallengeHealthyEating:   {"Health Champion Badge", "80 points"},
	models.ChallengeMealPrep:        {"Prep Pro Badge", "60 points"},
	models.ChallengeSpeedCooking:    {"Speed Chef Badge", "70 points"},
}

const recentHistoryLimit = 10

// ChallengeService tracks cooking challenges, recipe collections and
// per-user cooking history.
type ChallengeService struct {
	catalog *RecipeService

	mu          sync.RWMutex
	challenges  map[uuid.UUID][]*models.Challenge
	collections map[uuid.UUID][]*models.Collection
	history     map[uuid.UUID][]models.CookedEntry
}

func NewChallengeService(catalog *RecipeService) *ChallengeService {
	return &ChallengeService{
		catalog:     catalog,
		challenges:  make(map[uuid.UUID][]*models.Challenge),
		collections: make(map[uuid.UUID][]*models.Collection),
		history:     make(map[uuid.UUID][]models.CookedEntry),
	}
}

// CreateChallenge starts a new challenge for the user. Target recipes
// must exist in the catalog; durationDays defaults to 7.
func (s *ChallengeService) CreateChallenge(userID uuid.UUID, challengeType, title, description string, targetRecipes []string, durationDays int, difficulty string) (*models.Challenge, error) {
	if !models.ValidChallengeType(challengeType) {
		return nil, ErrInvalidChallenge
	}
	if durationDays <= 0 {
		durationDays = 7
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	targets := make([]string, 0, len(targetRecipes))
	for _, name := range targetRecipes {
		recipe, err := s.catalog.Get(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, recipe.Name)
	}

	now := time.Now().UTC()
	challenge := &models.Challenge{
		ID:               uuid.New(),
		UserID:           userID,
		Type:             challengeType,
		Title:            title,
		Description:      description,
		StartDate:        now,
		EndDate:          now.AddDate(0, 0, durationDays),
		TargetRecipes:    targets,
		CompletedRecipes: []string{},
		Rewards:          challengeRewards[challengeType],
		Difficulty:       difficulty,
		Active:           true,
	}

	s.mu.Lock()
	s.challenges[userID] = append(s.challenges[userID], challenge)
	s.mu.Unlock()
	return challenge, nil
}

// Challenges lists the user's challenges, newest first.
func (s *ChallengeService) Challenges(userID uuid.UUID) []models.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Challenge, 0, len(s.challenges[userID]))
	for i := len(s.challenges[userID]) - 1; i >= 0; i-- {
		out = append(out, *s.challenges[userID][i])
	}
	return out
}

// CompleteRecipe marks one of a challenge's target recipes as cooked
// and recomputes the progress percentage. Completing the final target
// deactivates the challenge.
func (s *ChallengeService) CompleteRecipe(userID, challengeID uuid.UUID, recipeName string) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var challenge *models.Challenge
	for _, c := range s.challenges[userID] {
		if c.ID == challengeID {
			challenge = c
			break
		}
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	name := ""
	for _, target := range challenge.TargetRecipes {
		if strings.EqualFold(target, recipeName) {
			name = target
			break
		}
	}
	if name == "" {
		return nil, ErrRecipeNotFound
	}
	for _, done := range challenge.CompletedRecipes {
		if done == name {
			copied := *challenge
			return &copied, nil
		}
	}

	challenge.CompletedRecipes = append(challenge.CompletedRecipes, name)
	if len(challenge.TargetRecipes) > 0 {
		challenge.Progress = round1(float64(len(challenge.CompletedRecipes)) / float64(len(challenge.TargetRecipes)) * 100)
	}
	if challenge.Progress >= 100 {
		challenge.Progress = 100
		challenge.Active = false
	}
	copied := *challenge
	return &copied, nil
}

// CreateCollection makes a new named recipe collection for the user.
func (s *ChallengeService) CreateCollection(userID uuid.UUID, name, description string, tags []string, public bool) *models.Collection {
	now := time.Now().UTC()
	collection := &models.Collection{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Recipes:     []string{},
		Tags:        tags,
		Public:      public,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.collections[userID] = append(s.collections[userID], collection)
	s.mu.Unlock()
	return collection
}

// Collections lists the user's collections in creation order.
func (s *ChallengeService) Collections(userID uuid.UUID) []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Collection, 0, len(s.collections[userID]))
	for _, c := range s.collections[userID] {
		out = append(out, *c)
	}
	return out
}

// AddToCollection appends a catalog recipe to a collection, ignoring
// duplicates.
func (s *ChallengeService) AddToCollection(userID, collectionID uuid.UUID, recipeName string) (*models.Collection, error) {
	recipe, err := s.catalog.Get(recipeName)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.collections[userID] {
		if c.ID != collectionID {
			continue
		}
		for _, existing := range c.Recipes {
			if existing == recipe.Name {
				copied := *c
				return &copied, nil
			}
		}
		c.Recipes = append(c.Recipes, recipe.Name)
		c.UpdatedAt = time.Now().UTC()
		copied := *c
		return &copied, nil
	}
	return nil, ErrCollectionNotFound
}

// TrackCooked appends a cooked recipe to the user's history and
// advances any active challenge that targets it.
func (s *ChallengeService) TrackCooked(userID uuid.UUID, recipeName string) (*models.CookedEntry, error) {
	recipe, err := s.catalog.Get(recipeName)
	if err != nil {
		return nil, err
	}

	entry := models.CookedEntry{RecipeName: recipe.Name, CookedAt: time.Now().UTC()}

	s.mu.Lock()
	s.history[userID] = append(s.history[userID], entry)
	for _, challenge := range s.challenges[userID] {
		if !challenge.Active {
			continue
		}
		s.advanceLocked(challenge, recipe.Name)
	}
	s.mu.Unlock()
	return &entry, nil
}

func (s *ChallengeService) advanceLocked(challenge *models.Challenge, recipeName string) {
	found := false
	for _, target := range challenge.TargetRecipes {
		if target == recipeName {
			found = true
			break
		}
	}
	if !found {
		return
	}
	for _, done := range challenge.CompletedRecipes {
		if done == recipeName {
			return
		}
	}
	challenge.CompletedRecipes = append(challenge.CompletedRecipes, recipeName)
	challenge.Progress = round1(float64(len(challenge.CompletedRecipes)) / float64(len(challenge.TargetRecipes)) * 100)
	if challenge.Progress >= 100 {
		challenge.Progress = 100
		challenge.Active = false
	}
}

// History returns the user's cooked-recipe history, newest first.
func (s *ChallengeService) History(userID uuid.UUID) []models.CookedEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[userID]
	out := make([]models.CookedEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}

// Stats summarizes the user's cooking history.
func (s *ChallengeService) Stats(userID uuid.UUID) *models.CookingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[userID]
	stats := &models.CookingStats{
		TotalRecipesCooked: len(entries),
		RecentRecipes:      []models.CookedEntry{},
	}
	if len(entries) == 0 {
		return stats
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.RecipeName]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	best := names[0]
	for _, name := range names[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	stats.MostCookedRecipe = best
	stats.CookingStreakDays = streakDays(entries, time.Now().UTC())

	recent := entries
	if len(recent) > recentHistoryLimit {
		recent = recent[len(recent)-recentHistoryLimit:]
	}
	for i := len(recent) - 1; i >= 0; i-- {
		stats.RecentRecipes = append(stats.RecentRecipes, recent[i])
	}
	return stats
}

// streakDays counts consecutive calendar days ending today (or
// yesterday) on which the user cooked something.
func streakDays(entries []models.CookedEntry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CookedAt.UTC().Format("2006-01-02")] = true
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
