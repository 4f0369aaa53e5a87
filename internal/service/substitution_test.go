package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func TestSubstitutionLookup(t *testing.T) {
	subs := service.NewSubstitutionService()

	result := subs.Lookup("butter")
	assert.Contains(t, result, "coconut oil")

	// Extra words on either side still match.
	assert.NotEmpty(t, subs.Lookup("unsalted butter"))
	assert.NotEmpty(t, subs.Lookup("BUTTER"))

	// "sour cream" must not fall through to a shorter overlapping key.
	assert.Equal(t, subs.Lookup("sour cream"), subs.Lookup("light sour cream"))

	assert.Empty(t, subs.Lookup("dragon fruit"))
	assert.Nil(t, subs.Lookup(""))
}

func TestCookingTips(t *testing.T) {
	subs := service.NewSubstitutionService()

	baking := subs.Tips("baking")
	assert.NotEmpty(t, baking)
	assert.Contains(t, baking[0], "Measure")

	// Unknown categories fall back to general tips.
	assert.Equal(t, subs.Tips("general"), subs.Tips("origami"))

	categories := subs.TipCategories()
	assert.Equal(t, []string{"baking", "food_storage", "general", "knife_skills"}, categories)
}
