package server

import (
	"context"
	"net/http"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) listThemes(c *gin.Context) {
	snapshot(c, h.repos.Themes.Themes)
}

func (h *Handlers) getTheme(c *gin.Context) {
	theme, found, err := h.repos.Themes.ThemeByID(c.Request.Context(), c.Param("id"))
	lookup(c, theme, found, err)
}

func (h *Handlers) activeTheme(c *gin.Context) {
	theme, err := h.repos.Themes.ActiveTheme(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *Handlers) saveTheme(c *gin.Context) {
	theme := model.NewAppTheme()
	if !bind(c, &theme) {
		return
	}
	theme.Id = c.Param("id")
	done(c, h.repos.Themes.SaveTheme(c.Request.Context(), theme))
}

func (h *Handlers) deleteTheme(c *gin.Context) {
	done(c, h.repos.Themes.DeleteTheme(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) activateTheme(c *gin.Context) {
	done(c, h.repos.Themes.Activate(c.Request.Context(), c.Param("id")))
}

// listElements serves visible elements, or every element of ?type=.
func (h *Handlers) listElements(c *gin.Context) {
	if name := c.Query("type"); name != "" {
		elementType, err := model.ParseUIElementType(name)
		if err != nil {
			badRequest(c, err)
			return
		}
		snapshot(c, func(ctx context.Context) (<-chan []model.UIElement, error) {
			return h.repos.Themes.ElementsByType(ctx, elementType)
		})
		return
	}
	snapshot(c, h.repos.Themes.VisibleElements)
}

func (h *Handlers) getElement(c *gin.Context) {
	e, found, err := h.repos.Themes.ElementByID(c.Request.Context(), c.Param("id"))
	lookup(c, e, found, err)
}

func (h *Handlers) saveElement(c *gin.Context) {
	e := model.NewUIElement()
	if !bind(c, &e) {
		return
	}
	e.Id = c.Param("id")
	done(c, h.repos.Themes.SaveElement(c.Request.Context(), e))
}

func (h *Handlers) deleteElement(c *gin.Context) {
	done(c, h.repos.Themes.DeleteElement(c.Request.Context(), c.Param("id")))
}

type visibilityBody struct {
	IsVisible bool `json:"isVisible"`
}

func (h *Handlers) setElementVisibility(c *gin.Context) {
	var body visibilityBody
	if !bind(c, &body) {
		return
	}
	done(c, h.repos.Themes.SetElementVisibility(c.Request.Context(), c.Param("id"), body.IsVisible))
}
