package server

import (
	"context"
	"net/http"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
)

// listMusic serves GET /music, narrowed by either ?category= or
// ?month=&year=.
func (h *Handlers) listMusic(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		snapshot(c, func(ctx context.Context) (<-chan []model.Music, error) {
			return h.repos.Music.MusicByCategory(ctx, category)
		})
		return
	}
	if month := c.Query("month"); month != "" {
		year, ok := intQuery(c, "year")
		if !ok {
			return
		}
		snapshot(c, func(ctx context.Context) (<-chan []model.Music, error) {
			return h.repos.Music.MusicByMonth(ctx, month, year)
		})
		return
	}
	snapshot(c, h.repos.Music.AllMusic)
}

func (h *Handlers) getMusic(c *gin.Context) {
	m, found, err := h.repos.Music.MusicByID(c.Request.Context(), c.Param("id"))
	lookup(c, m, found, err)
}

func (h *Handlers) musicCategoryNames(c *gin.Context) {
	snapshot(c, h.repos.Music.Categories)
}

func (h *Handlers) musicYears(c *gin.Context) {
	snapshot(c, h.repos.Music.Years)
}

func (h *Handlers) musicMonths(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}
	snapshot(c, func(ctx context.Context) (<-chan []string, error) {
		return h.repos.Music.MonthsByYear(ctx, year)
	})
}

func (h *Handlers) insertMusic(c *gin.Context) {
	m := model.NewMusic()
	if !bind(c, &m) {
		return
	}
	if err := h.repos.Music.InsertMusic(c.Request.Context(), m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handlers) updateMusic(c *gin.Context) {
	m := model.NewMusic()
	if !bind(c, &m) {
		return
	}
	m.Id = c.Param("id")
	done(c, h.repos.Music.UpdateMusic(c.Request.Context(), m))
}

func (h *Handlers) deleteMusic(c *gin.Context) {
	done(c, h.repos.Music.DeleteMusic(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) setMusicActive(c *gin.Context) {
	var body activeBody
	if !bind(c, &body) {
		return
	}
	done(c, h.repos.Music.SetMusicActive(c.Request.Context(), c.Param("id"), body.IsActive))
}

func (h *Handlers) listMusicCategories(c *gin.Context) {
	snapshot(c, h.repos.Music.AllMusicCategories)
}

func (h *Handlers) insertMusicCategory(c *gin.Context) {
	category := model.NewMusicCategory()
	if !bind(c, &category) {
		return
	}
	if err := h.repos.Music.InsertCategory(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handlers) updateMusicCategory(c *gin.Context) {
	category := model.NewMusicCategory()
	if !bind(c, &category) {
		return
	}
	category.Id = c.Param("id")
	done(c, h.repos.Music.UpdateCategory(c.Request.Context(), category))
}

func (h *Handlers) deleteMusicCategory(c *gin.Context) {
	done(c, h.repos.Music.DeleteCategory(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) uploadMusicAudio(c *gin.Context) {
	upload(c, h.repos.Music.UploadAudioFile)
}

func (h *Handlers) uploadMusicThumbnail(c *gin.Context) {
	upload(c, h.repos.Music.UploadThumbnailImage)
}
