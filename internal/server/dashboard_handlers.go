package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Dashboard handles GET /dashboard. Visitors without a logged-in session are
// sent to the login page.
func (s *Server) Dashboard(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	if !loggedIn(sess) {
		return c.Redirect("/login", fiber.StatusFound)
	}

	return s.renderDashboard(c, sess)
}

// CreateDashboardPost handles POST /dashboard and creates a post from the
// form fields, then re-renders the dashboard with the updated list.
func (s *Server) CreateDashboardPost(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	if !loggedIn(sess) {
		return c.Redirect("/login", fiber.StatusFound)
	}

	_, err = s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	})
	if err != nil {
		if !models.IsValidation(err) {
			return s.fail(c, err)
		}
		flash(sess, "error", "Title and content are required")
		c.Status(fiber.StatusBadRequest)
	}

	return s.renderDashboard(c, sess)
}

// renderDashboard lists all posts into the dashboard view.
func (s *Server) renderDashboard(c *fiber.Ctx, sess *session.Session) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return s.render(c, sess, "dashboard", fiber.Map{"Posts": posts})
}
