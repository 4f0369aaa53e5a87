package service

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidServings    = errors.New("servings must be a positive integer")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found in inventory")
	ErrNegativeQuantity   = errors.New("quantity must be >= 0")
	ErrInvalidLocation    = errors.New("location must be pantry, fridge or freezer")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview    = errors.New("recipe already reviewed by this user")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotReviewOwner     = errors.New("review belongs to another user")
	ErrAlreadyVoted       = errors.New("review already marked helpful")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrInvalidChallenge   = errors.New("unknown challenge type")
	ErrNoRecipesForDiet   = errors.New("no recipes available for the requested diet")
	ErrNoShoppingList     = errors.New("no shopping list created yet")
)
