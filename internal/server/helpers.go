package server

import (
	"log/slog"

	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys. Flash entries are consumed by the next render.
const (
	sessionLoggedIn  = "logged_in"
	sessionUsername  = "username"
	flashMessageKey  = "flash_message"
	flashCategoryKey = "flash_category"
)

// parsePostID extracts the :id route parameter as a positive uint.
func parsePostID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid post ID")
	}
	return uint(id), nil
}

// loggedIn reports whether the session carries the logged-in flag.
func loggedIn(sess *session.Session) bool {
	b, _ := sess.Get(sessionLoggedIn).(bool)
	return b
}

// flash stores a one-shot message in the session. The next render consumes it.
func flash(sess *session.Session, category, message string) {
	sess.Set(flashMessageKey, message)
	sess.Set(flashCategoryKey, category)
}

// render saves the session and renders the named view. The data map is
// augmented with the pending flash message (consumed here) and the session's
// login state.
func (s *Server) render(c *fiber.Ctx, sess *session.Session, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}

	if msg, ok := sess.Get(flashMessageKey).(string); ok && msg != "" {
		data["Flash"] = msg
		if cat, ok := sess.Get(flashCategoryKey).(string); ok {
			data["FlashCategory"] = cat
		}
		sess.Delete(flashMessageKey)
		sess.Delete(flashCategoryKey)
	}

	data["LoggedIn"] = loggedIn(sess)
	if username, ok := sess.Get(sessionUsername).(string); ok {
		data["Username"] = username
	}

	if err := sess.Save(); err != nil {
		return s.fail(c, models.NewInternalError(err))
	}
	return c.Render(name, data)
}

// redirect saves the session and issues a 302 to location.
func (s *Server) redirect(c *fiber.Ctx, sess *session.Session, location string) error {
	if err := sess.Save(); err != nil {
		return s.fail(c, models.NewInternalError(err))
	}
	return c.Redirect(location, fiber.StatusFound)
}

// httpStatus maps an application error to its response status.
func httpStatus(err error) int {
	switch {
	case models.IsNotFound(err):
		return fiber.StatusNotFound
	case models.IsValidation(err):
		return fiber.StatusBadRequest
	case models.IsDuplicateUsername(err):
		return fiber.StatusConflict
	case models.IsInvalidCredentials(err):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes a plain error response for failures that have no dedicated
// view. Internal details are logged, never exposed.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := httpStatus(err)
	if status == fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request error",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
		)
		return c.Status(status).SendString("Internal server error")
	}
	return c.Status(status).SendString(err.Error())
}
