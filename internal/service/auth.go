package service

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealforge/backend/internal/models"
	"github.com/mealforge/backend/internal/types"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthService handles user registration, login and token validation.
type AuthService struct {
	jwtSecret []byte

	mu         sync.RWMutex
	users      map[uuid.UUID]*models.User
	byUsername map[string]uuid.UUID
	byEmail    map[string]uuid.UUID
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret:  []byte(jwtSecret),
		users:      make(map[uuid.UUID]*models.User),
		byUsername: make(map[string]uuid.UUID),
		byEmail:    make(map[string]uuid.UUID),
	}
}

// Register creates a new user account and returns a signed token.
func (s *AuthService) Register(username, email, password string) (*models.User, string, error) {
	usernameKey := strings.ToLower(strings.TrimSpace(username))
	emailKey := strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[usernameKey]; exists {
		return nil, "", ErrUserExists
	}
	if _, exists := s.byEmail[emailKey]; exists {
		return nil, "", ErrUserExists
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(username),
		Email:        emailKey,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
		Profile: models.Profile{
			DietaryRestrictions: []string{},
			Allergies:           []string{},
			SkillLevel:          "beginner",
			FamilySize:          2,
			CuisinePreferences:  []string{},
		},
	}
	s.users[user.ID] = user
	s.byUsername[usernameKey] = user.ID
	s.byEmail[emailKey] = user.ID

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	copied := *user
	return &copied, token, nil
}

// Login authenticates by email and password and returns a fresh token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	emailKey := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[emailKey]
	if !ok {
		return nil, "", ErrInvalidCredentials
	}
	user := s.users[id]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	user.LastLogin = time.Now().UTC()

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	copied := *user
	return &copied, token, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID:   user.ID,
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and verifies a signed token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// User returns the stored user by ID.
func (s *AuthService) User(userID uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// UpdateProfile applies the non-nil fields to the user's profile.
func (s *AuthService) UpdateProfile(userID uuid.UUID, dietary, allergies, cuisines []string, skillLevel, budgetRange *string, familySize *int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if dietary != nil {
		user.Profile.DietaryRestrictions = dietary
	}
	if allergies != nil {
		user.Profile.Allergies = allergies
	}
	if cuisines != nil {
		user.Profile.CuisinePreferences = cuisines
	}
	if skillLevel != nil {
		user.Profile.SkillLevel = *skillLevel
	}
	if budgetRange != nil {
		user.Profile.BudgetRange = *budgetRange
	}
	if familySize != nil && *familySize > 0 {
		user.Profile.FamilySize = *familySize
	}
	copied := *user
	return &copied, nil
}
