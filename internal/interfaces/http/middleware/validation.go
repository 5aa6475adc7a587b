package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hjumpers/backend/internal/domain/catalog"
	"github.com/hjumpers/backend/internal/domain/trade"
)

// SetupValidator registers the storefront enum validations on gin's binding
// engine: "category", "businesstype" and "orderstatus" binding tags.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return catalog.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("businesstype", func(fl validator.FieldLevel) bool {
		return catalog.BusinessType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return trade.Status(fl.Field().String()).IsValid()
	})
}
