package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Index handles GET / and lists every post.
func (s *Server) Index(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}

	return s.render(c, sess, "index", fiber.Map{"Posts": posts})
}

// ShowPost handles GET /post/:id and renders a single post with its comments.
func (s *Server) ShowPost(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	id, err := parsePostID(c)
	if err != nil {
		return s.fail(c, err)
	}

	return s.renderPost(c, sess, id)
}

// AddComment handles POST /post/:id. The comment is appended and the post view
// is re-rendered in place; there is no redirect, so resubmitting the form
// appends the comment again.
func (s *Server) AddComment(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	id, err := parsePostID(c)
	if err != nil {
		return s.fail(c, err)
	}

	_, err = s.commentService.AddComment(c.UserContext(), service.AddCommentInput{
		PostID: id,
		Text:   c.FormValue("comment"),
	})
	if err != nil {
		if !models.IsValidation(err) {
			return s.fail(c, err)
		}
		// Empty comment: flag the input and fall through to the normal view.
		flash(sess, "error", "Comment text is required")
		c.Status(fiber.StatusBadRequest)
	}

	return s.renderPost(c, sess, id)
}

// renderPost fetches a post with its comments and renders the post view.
func (s *Server) renderPost(c *fiber.Ctx, sess *session.Session, id uint) error {
	ctx := c.UserContext()

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}

	comments, err := s.commentService.ListComments(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.render(c, sess, "post", fiber.Map{
		"Post":     post,
		"Comments": comments,
	})
}
