package middleware

import (
	"codequiz/internal/domain"
	"codequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Locals keys set by the validation middleware.
const (
	LocalFilterCriteria = "validated_filter_criteria"
	LocalForce          = "validated_force"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateFilterParams validates the difficulty and type query parameters
// and stores the resulting criteria for the handler. Missing parameters
// default to "all".
func (vm *ValidationMiddleware) ValidateFilterParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Query values alias the request buffer; copy before storing them.
		difficulty := utils.CopyString(c.Query("difficulty", domain.FilterAll))
		questionType := utils.CopyString(c.Query("type", domain.FilterAll))

		if errs := vm.validator.ValidateFilters(difficulty, questionType); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}

		c.Locals(LocalFilterCriteria, domain.FilterCriteria{Difficulty: difficulty, Type: questionType})
		return c.Next()
	}
}

// ValidateForceParam parses the force query parameter
func (vm *ValidationMiddleware) ValidateForceParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		force, errs := vm.validator.ParseForce(c.Query("force"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalForce, force)
		return c.Next()
	}
}

// FilterCriteria returns the criteria stored by ValidateFilterParams.
func FilterCriteria(c *fiber.Ctx) domain.FilterCriteria {
	criteria, ok := c.Locals(LocalFilterCriteria).(domain.FilterCriteria)
	if !ok {
		return domain.FilterCriteria{Difficulty: domain.FilterAll, Type: domain.FilterAll}
	}
	return criteria
}

// Force returns the flag stored by ValidateForceParam.
func Force(c *fiber.Ctx) bool {
	force, _ := c.Locals(LocalForce).(bool)
	return force
}
