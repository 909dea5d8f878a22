package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/application/operation"
	"github.com/jhoicas/inventory-ops/internal/domain"
)

// writeError traduce errores de dominio a la respuesta HTTP. n es la notificación a mostrar
// al operador, si la hay.
func writeError(c *fiber.Ctx, err error, n *dto.Notification) error {
	status, code := statusFor(err)
	if n == nil && errors.Is(err, domain.ErrIncompleteOperation) {
		n = operation.IncompleteNotification()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error(), Notification: n})
}

// statusFor devuelve el código HTTP y el código de error para err.
func statusFor(err error) (status int, code string) {
	status, code = fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrIncompleteOperation):
		status, code = fiber.StatusUnprocessableEntity, "INCOMPLETE_OPERATION"
	case errors.Is(err, domain.ErrUnknownOperationType):
		status, code = fiber.StatusBadRequest, "UNKNOWN_OPERATION_TYPE"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}
	return status, code
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
