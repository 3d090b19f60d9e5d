package server

import (
	"net/http"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type signUpBody struct {
	Email    string         `json:"email" binding:"required"`
	Password string         `json:"password" binding:"required"`
	Name     string         `json:"name"`
	Role     model.UserRole `json:"role"`
}

type credentialsBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type resetBody struct {
	Email string `json:"email" binding:"required"`
}

func (h *Handlers) signUp(c *gin.Context) {
	var body signUpBody
	if !bind(c, &body) {
		return
	}
	user, err := h.repos.Auth.SignUp(c.Request.Context(), body.Email, body.Password, body.Name, body.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handlers) signIn(c *gin.Context) {
	var body credentialsBody
	if !bind(c, &body) {
		return
	}
	user, err := h.repos.Auth.SignIn(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) signOut(c *gin.Context) {
	done(c, h.repos.Auth.SignOut(c.Request.Context()))
}

func (h *Handlers) resetPassword(c *gin.Context) {
	var body resetBody
	if !bind(c, &body) {
		return
	}
	done(c, h.repos.Auth.ResetPassword(c.Request.Context(), body.Email))
}

func (h *Handlers) currentUser(c *gin.Context) {
	user, found, err := h.repos.Auth.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, errors.Wrap(errNotFound, "no signed in user"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// updateProfile replaces the signed in user's profile. The id always comes
// from the session, never from the body.
func (h *Handlers) updateProfile(c *gin.Context) {
	current, found, err := h.repos.Auth.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, errors.Wrap(errNotFound, "no signed in user"))
		return
	}
	user := current
	if !bind(c, &user) {
		return
	}
	user.Id = current.Id
	done(c, h.repos.Auth.UpdateUserProfile(c.Request.Context(), user))
}
