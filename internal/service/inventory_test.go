package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/models"
	"github.com/mealforge/backend/internal/service"
)

func TestInventoryAddAndList(t *testing.T) {
	inv := service.NewInventoryService()
	userID := uuid.New()

	item, err := inv.Add(userID, models.InventoryItem{
		Name:     "rice",
		Quantity: 2,
		Unit:     "kg",
		Location: models.LocationPantry,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.False(t, item.AddedAt.IsZero())

	_, err = inv.Add(userID, models.InventoryItem{
		Name:     "milk",
		Quantity: 1,
		Unit:     "l",
		Location: models.LocationFridge,
	})
	assert.NoError(t, err)

	view := inv.List(userID)
	assert.Equal(t, 2, view.TotalItems)
	assert.Len(t, view.Pantry, 1)
	assert.Len(t, view.Fridge, 1)
	assert.Empty(t, view.Freezer)
}

func TestInventoryRejectsBadInput(t *testing.T) {
	inv := service.NewInventoryService()
	userID := uuid.New()

	_, err := inv.Add(userID, models.InventoryItem{Name: "flour", Quantity: -1, Location: models.LocationPantry})
	assert.ErrorIs(t, err, service.ErrNegativeQuantity)

	_, err = inv.Add(userID, models.InventoryItem{Name: "flour", Quantity: 1, Location: "garage"})
	assert.ErrorIs(t, err, service.ErrInvalidLocation)
}

func TestInventoryExpiringSoon(t *testing.T) {
	inv := service.NewInventoryService()
	userID := uuid.New()

	soon := time.Now().Add(48 * time.Hour)
	later := time.Now().Add(30 * 24 * time.Hour)
	_, err := inv.Add(userID, models.InventoryItem{Name: "yogurt", Quantity: 1, Location: models.LocationFridge, ExpiryDate: &soon})
	assert.NoError(t, err)
	_, err = inv.Add(userID, models.InventoryItem{Name: "butter", Quantity: 1, Location: models.LocationFridge, ExpiryDate: &later})
	assert.NoError(t, err)

	view := inv.List(userID)
	assert.Len(t, view.ExpiringSoon, 1)
	assert.Equal(t, "yogurt", view.ExpiringSoon[0].Item.Name)
	assert.LessOrEqual(t, view.ExpiringSoon[0].DaysUntilExpiry, 2)
}

func TestInventoryUpdateAppliesOnlyProvidedFields(t *testing.T) {
	inv := service.NewInventoryService()
	userID := uuid.New()

	item, err := inv.Add(userID, models.InventoryItem{Name: "chicken", Quantity: 2, Unit: "lbs", Location: models.LocationFridge})
	assert.NoError(t, err)

	qty := 1.5
	loc := models.LocationFreezer
	updated, err := inv.Update(userID, item.ID, &qty, nil, nil, &loc, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, updated.Quantity)
	assert.Equal(t, models.LocationFreezer, updated.Location)
	assert.Equal(t, "lbs", updated.Unit)
}

func TestInventoryUpdateUnknownItem(t *testing.T) {
	inv := service.NewInventoryService()
	qty := 1.0
	_, err := inv.Update(uuid.New(), uuid.New(), &qty, nil, nil, nil, nil)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestInventoryRemove(t *testing.T) {
	inv := service.NewInventoryService()
	userID := uuid.New()

	item, err := inv.Add(userID, models.InventoryItem{Name: "peas", Quantity: 1, Location: models.LocationFreezer})
	assert.NoError(t, err)

	removed, err := inv.Remove(userID, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "peas", removed.Name)

	_, err = inv.Remove(userID, item.ID)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
	assert.Zero(t, inv.List(userID).TotalItems)
}

func TestInventoryIsolatedPerUser(t *testing.T) {
	inv := service.NewInventoryService()
	alice, bob := uuid.New(), uuid.New()

	_, err := inv.Add(alice, models.InventoryItem{Name: "rice", Quantity: 1, Location: models.LocationPantry})
	assert.NoError(t, err)

	assert.Equal(t, 1, inv.List(alice).TotalItems)
	assert.Zero(t, inv.List(bob).TotalItems)
	assert.Empty(t, inv.ItemNames(bob))
	assert.Equal(t, []string{"rice"}, inv.ItemNames(alice))
}
