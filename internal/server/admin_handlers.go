package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Admin routes carry no access control of their own. That mirrors the system
// this replaces; adding a guard is a deliberate product decision, not a
// refactoring one.

// AdminDashboard handles GET /admin/dashboard and lists every post with its
// edit and delete actions.
func (s *Server) AdminDashboard(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}

	return s.render(c, sess, "admin_dashboard", fiber.Map{"Posts": posts})
}

// UpdatePostForm handles GET /admin/update_post/:id and renders the edit form.
func (s *Server) UpdatePostForm(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	id, err := parsePostID(c)
	if err != nil {
		return s.fail(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.render(c, sess, "update_post", fiber.Map{"Post": post})
}

// UpdatePost handles POST /admin/update_post/:id, applies the edit and
// redirects back to the admin dashboard.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	id, err := parsePostID(c)
	if err != nil {
		return s.fail(c, err)
	}

	_, err = s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		ID:      id,
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	})
	if err != nil {
		if models.IsValidation(err) {
			// Re-render the edit form with the stored post untouched.
			stored, getErr := s.postService.GetPost(c.UserContext(), id)
			if getErr != nil {
				return s.fail(c, getErr)
			}
			flash(sess, "error", "Title and content are required")
			c.Status(fiber.StatusBadRequest)
			return s.render(c, sess, "update_post", fiber.Map{"Post": stored})
		}
		return s.fail(c, err)
	}

	flash(sess, "success", "Post updated successfully!")
	return s.redirect(c, sess, "/admin/dashboard")
}

// DeletePost handles GET /admin/delete_post/:id and redirects back to the
// admin dashboard.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	id, err := parsePostID(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return s.fail(c, err)
	}

	flash(sess, "success", "Post deleted successfully!")
	return s.redirect(c, sess, "/admin/dashboard")
}
