package server

import (
	"context"
	"net/http"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// listNews serves the published board, optionally narrowed by ?category=.
func (h *Handlers) listNews(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		snapshot(c, func(ctx context.Context) (<-chan []model.News, error) {
			return h.repos.News.NewsByCategory(ctx, category)
		})
		return
	}
	snapshot(c, h.repos.News.PublishedNews)
}

func (h *Handlers) listAllNews(c *gin.Context) {
	snapshot(c, h.repos.News.AllNews)
}

func (h *Handlers) listDraftNews(c *gin.Context) {
	snapshot(c, h.repos.News.DraftNews)
}

func (h *Handlers) getNews(c *gin.Context) {
	n, found, err := h.repos.News.NewsByID(c.Request.Context(), c.Param("id"))
	lookup(c, n, found, err)
}

func (h *Handlers) createNews(c *gin.Context) {
	n := model.NewNews()
	if !bind(c, &n) {
		return
	}
	if err := h.repos.News.CreateNews(c.Request.Context(), n); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handlers) updateNews(c *gin.Context) {
	n := model.NewNews()
	if !bind(c, &n) {
		return
	}
	n.Id = c.Param("id")
	done(c, h.repos.News.UpdateNews(c.Request.Context(), n))
}

func (h *Handlers) deleteNews(c *gin.Context) {
	done(c, h.repos.News.DeleteNews(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) publishNews(c *gin.Context) {
	done(c, h.repos.News.PublishNews(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) unpublishNews(c *gin.Context) {
	done(c, h.repos.News.UnpublishNews(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) listNewsFiles(c *gin.Context) {
	snapshot(c, func(ctx context.Context) (<-chan []model.NewsFile, error) {
		return h.repos.News.FilesByNews(ctx, c.Param("id"))
	})
}

func (h *Handlers) addNewsFile(c *gin.Context) {
	var f model.NewsFile
	if !bind(c, &f) {
		return
	}
	f.Id = uuid.New().String()
	f.NewsId = c.Param("id")
	if err := h.repos.News.AddFile(c.Request.Context(), f); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *Handlers) updateNewsFile(c *gin.Context) {
	var f model.NewsFile
	if !bind(c, &f) {
		return
	}
	f.Id = c.Param("id")
	done(c, h.repos.News.UpdateFile(c.Request.Context(), f))
}

func (h *Handlers) deleteNewsFile(c *gin.Context) {
	done(c, h.repos.News.DeleteFile(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) listNewsLinks(c *gin.Context) {
	snapshot(c, func(ctx context.Context) (<-chan []model.NewsLink, error) {
		return h.repos.News.LinksByNews(ctx, c.Param("id"))
	})
}

func (h *Handlers) addNewsLink(c *gin.Context) {
	var l model.NewsLink
	if !bind(c, &l) {
		return
	}
	l.Id = uuid.New().String()
	l.NewsId = c.Param("id")
	if err := h.repos.News.AddLink(c.Request.Context(), l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *Handlers) updateNewsLink(c *gin.Context) {
	var l model.NewsLink
	if !bind(c, &l) {
		return
	}
	l.Id = c.Param("id")
	done(c, h.repos.News.UpdateLink(c.Request.Context(), l))
}

func (h *Handlers) deleteNewsLink(c *gin.Context) {
	done(c, h.repos.News.DeleteLink(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) uploadNewsImage(c *gin.Context) {
	upload(c, h.repos.News.UploadNewsImage)
}

func (h *Handlers) uploadNewsFile(c *gin.Context) {
	upload(c, h.repos.News.UploadNewsFile)
}
