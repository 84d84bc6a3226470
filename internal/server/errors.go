package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joseph-ayodele/resume-site/internal/common"
)

// fail maps the error taxonomy onto a status and a JSON body.
// Anything that is not a client error gets the opaque fallback message.
func (s *Server) fail(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		msg := "Bad request"
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		return jsonError(c, fiber.StatusBadRequest, msg)
	case errors.Is(err, common.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, msgNotFound)
	default:
		return jsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// errorHandler covers errors raised outside handlers: unknown routes,
// oversized bodies and recovered panics.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return jsonError(c, fe.Code, fe.Message)
	}
	common.LoggerFromContext(c.UserContext(), s.logger).Error("http.unhandled_error", "path", c.Path(), "error", err)
	return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
