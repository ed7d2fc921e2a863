package serverutils

import (
	"errors"

	"research-gap-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware renders errors returned by downstream handlers as
// JSON envelopes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
				Success: false,
				Code:    fiber.StatusBadRequest,
				Message: "Invalid request",
				Error:   verr.Error(),
				Details: verr.Issues,
			})
		}

		if llm.IsConfigurationError(err) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
