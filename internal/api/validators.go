package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mealforge/backend/internal/models"
)

// RegisterValidators installs the custom binding validators. Safe to call
// more than once.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("storagelocation", func(fl validator.FieldLevel) bool {
			return models.ValidLocation(fl.Field().String())
		})
	}
}
