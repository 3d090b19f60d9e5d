package server

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// listUsers serves every user, or those matching ?role= or ?active=true.
func (h *Handlers) listUsers(c *gin.Context) {
	if name := c.Query("role"); name != "" {
		role, err := model.ParseUserRole(name)
		if err != nil {
			badRequest(c, err)
			return
		}
		snapshot(c, func(ctx context.Context) (<-chan []model.User, error) {
			return h.repos.Users.UsersByRole(ctx, role)
		})
		return
	}
	if c.Query("active") == "true" {
		snapshot(c, h.repos.Users.ActiveUsers)
		return
	}
	snapshot(c, h.repos.Users.Users)
}

func (h *Handlers) getUser(c *gin.Context) {
	u, found, err := h.repos.Users.UserByID(c.Request.Context(), c.Param("id"))
	lookup(c, u, found, err)
}

func (h *Handlers) getUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, errors.New("email is required"))
		return
	}
	u, found, err := h.repos.Users.UserByEmail(c.Request.Context(), email)
	lookup(c, u, found, err)
}

func (h *Handlers) saveUser(c *gin.Context) {
	u := model.NewUser()
	if !bind(c, &u) {
		return
	}
	u.Id = c.Param("id")
	done(c, h.repos.Users.SaveUser(c.Request.Context(), u))
}

func (h *Handlers) deleteUser(c *gin.Context) {
	done(c, h.repos.Users.DeleteUser(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) setUserActive(c *gin.Context) {
	var body activeBody
	if !bind(c, &body) {
		return
	}
	done(c, h.repos.Users.SetUserActive(c.Request.Context(), c.Param("id"), body.IsActive))
}

func (h *Handlers) recordLogin(c *gin.Context) {
	done(c, h.repos.Users.RecordLogin(c.Request.Context(), c.Param("id")))
}
