package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/envisys/internal/app/navigation"
)

// Custom validation tags
const (
	TagPage = "page"
	TagRole = "role"
)

// RegisterRules adds the portal validation tags to v
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagPage, validatePage); err != nil {
		return fmt.Errorf("register %s rule: %w", TagPage, err)
	}
	if err := v.RegisterValidation(TagRole, validateRole); err != nil {
		return fmt.Errorf("register %s rule: %w", TagRole, err)
	}
	return nil
}

// RegisterWithGin installs the portal rules on gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return RegisterRules(v)
}

func validatePage(fl validator.FieldLevel) bool {
	_, err := navigation.ParsePage(fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := navigation.ParseRole(fl.Field().String())
	return err == nil
}
