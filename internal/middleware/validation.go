package middleware

import (
	"mindflow/internal/domain"
	"mindflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	ValidatedUserIDKey = "validated_user_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// RequireUserID validates the user_id query parameter and stores it in locals.
func (vm *ValidationMiddleware) RequireUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if errors := vm.validator.ValidateUserID(userID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedUserIDKey, userID)
		return c.Next()
	}
}

// RequireBodyUserID validates the user_id field of a JSON create body. The handler
// still parses the full body afterwards.
func (vm *ValidationMiddleware) RequireBodyUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&body); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if errors := vm.validator.ValidateUserID(body.UserID); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidatePathID validates the named route parameter.
func (vm *ValidationMiddleware) ValidatePathID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidatePathID(param, c.Params(param)); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidateAssessmentBody checks the submission body against the assessment schema
// before the handler decodes it.
func (vm *ValidationMiddleware) ValidateAssessmentBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateAssessmentBody(c.Body()); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}
