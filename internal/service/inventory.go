package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

// expiryWarningDays is the window for the expiring-soon report.
const expiryWarningDays = 7

// InventoryService tracks each user's ingredients on hand.
type InventoryService struct {
	mu    sync.RWMutex
	items map[uuid.UUID][]*models.InventoryItem
}

func NewInventoryService() *InventoryService {
	return &InventoryService{items: make(map[uuid.UUID][]*models.InventoryItem)}
}

// Add appends an item to the user's inventory and returns it with its
// generated ID.
func (s *InventoryService) Add(userID uuid.UUID, item models.InventoryItem) (*models.InventoryItem, error) {
	if item.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if !models.ValidLocation(item.Location) {
		return nil, ErrInvalidLocation
	}
	item.ID = uuid.New()
	item.AddedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := item
	s.items[userID] = append(s.items[userID], &stored)
	return &stored, nil
}

// InventoryView groups a user's inventory by storage location.
type InventoryView struct {
	Pantry       []models.InventoryItem `json:"pantry"`
	Fridge       []models.InventoryItem `json:"fridge"`
	Freezer      []models.InventoryItem `json:"freezer"`
	TotalItems   int                    `json:"total_items"`
	ExpiringSoon []models.ExpiringItem  `json:"expiring_soon"`
}

// List returns the user's inventory grouped by location, with items
// expiring within the warning window called out.
func (s *InventoryService) List(userID uuid.UUID) InventoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := InventoryView{
		Pantry:       []models.InventoryItem{},
		Fridge:       []models.InventoryItem{},
		Freezer:      []models.InventoryItem{},
		ExpiringSoon: []models.ExpiringItem{},
	}
	now := time.Now().UTC()
	for _, item := range s.items[userID] {
		switch item.Location {
		case models.LocationPantry:
			view.Pantry = append(view.Pantry, *item)
		case models.LocationFridge:
			view.Fridge = append(view.Fridge, *item)
		case models.LocationFreezer:
			view.Freezer = append(view.Freezer, *item)
		}
		view.TotalItems++
		if item.ExpiryDate != nil {
			days := int(item.ExpiryDate.Sub(now).Hours() / 24)
			if days >= 0 && days <= expiryWarningDays {
				view.ExpiringSoon = append(view.ExpiringSoon, models.ExpiringItem{
					Item:            *item,
					DaysUntilExpiry: days,
				})
			}
		}
	}
	return view
}

// Update applies non-nil fields to the identified item.
func (s *InventoryService) Update(userID, itemID uuid.UUID, quantity *float64, unit, expiry, location, notes *string) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items[userID] {
		if item.ID != itemID {
			continue
		}
		if quantity != nil {
			if *quantity < 0 {
				return nil, ErrNegativeQuantity
			}
			item.Quantity = *quantity
		}
		if unit != nil {
			item.Unit = *unit
		}
		if location != nil {
			if !models.ValidLocation(*location) {
				return nil, ErrInvalidLocation
			}
			item.Location = *location
		}
		if expiry != nil {
			if *expiry == "" {
				item.ExpiryDate = nil
			} else {
				t, err := time.Parse("2006-01-02", *expiry)
				if err != nil {
					return nil, err
				}
				item.ExpiryDate = &t
			}
		}
		if notes != nil {
			item.Notes = *notes
		}
		copied := *item
		return &copied, nil
	}
	return nil, ErrItemNotFound
}

// Remove deletes the identified item and returns it.
func (s *InventoryService) Remove(userID, itemID uuid.UUID) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[userID]
	for i, item := range items {
		if item.ID == itemID {
			s.items[userID] = append(items[:i], items[i+1:]...)
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// ItemNames returns the names of everything the user has on hand, for
// feeding the Matcher.
func (s *InventoryService) ItemNames(userID uuid.UUID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.items[userID]))
	for _, item := range s.items[userID] {
		names = append(names, item.Name)
	}
	return names
}
