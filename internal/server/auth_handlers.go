package server

import (
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SignupForm handles GET /signup.
func (s *Server) SignupForm(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}
	return s.render(c, sess, "signup", nil)
}

// Signup handles POST /signup. On success the visitor is redirected to the
// login page; a duplicate username re-renders the form with a flash message.
func (s *Server) Signup(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	_, err = s.authService.SignUp(c.UserContext(), service.SignUpInput{
		Username:    c.FormValue("username"),
		Password:    c.FormValue("password"),
		Gender:      c.FormValue("gender"),
		PhoneNumber: c.FormValue("phone_number"),
		Email:       c.FormValue("email"),
		Name:        c.FormValue("name"),
		UserType:    c.FormValue("user_type"),
	})
	switch {
	case err == nil:
		flash(sess, "success", "Account created successfully!")
		return s.redirect(c, sess, "/login")
	case models.IsDuplicateUsername(err):
		flash(sess, "error", "Username already exists. Please choose a different username.")
		return s.render(c, sess, "signup", nil)
	case models.IsValidation(err):
		flash(sess, "error", "Username and password are required")
		c.Status(fiber.StatusBadRequest)
		return s.render(c, sess, "signup", nil)
	default:
		return s.fail(c, err)
	}
}

// LoginForm handles GET /login. The login form lives inside the dashboard
// view, so that view is rendered without any credential check.
func (s *Server) LoginForm(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}
	return s.render(c, sess, "dashboard", nil)
}

// Login handles POST /login. A successful login marks the session and greets
// the user; the dashboard view is rendered in place either way, without a
// redirect, so the address bar stays on /login.
func (s *Server) Login(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	username := c.FormValue("username")
	user, err := s.authService.LogIn(c.UserContext(), username, c.FormValue("password"))
	switch {
	case err == nil:
		sess.Set(sessionLoggedIn, true)
		sess.Set(sessionUsername, user.Username)
		flash(sess, "success", fmt.Sprintf("Welcome, %s!", user.Username))
	case models.IsInvalidCredentials(err):
		flash(sess, "error", "Invalid username or password. Please try again.")
	default:
		return s.fail(c, err)
	}

	return s.render(c, sess, "dashboard", nil)
}

// Logout handles GET /logout. Only the logged-in flag is dropped; the
// remembered username stays in the session.
func (s *Server) Logout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.fail(c, models.NewInternalError(err))
	}

	sess.Delete(sessionLoggedIn)
	return s.redirect(c, sess, "/")
}
