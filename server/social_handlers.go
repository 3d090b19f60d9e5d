package server

import (
	"context"
	"net/http"

	"github.com/Luismorlan/choirmux/model"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) listPosts(c *gin.Context) {
	if userId := c.Query("user"); userId != "" {
		snapshot(c, func(ctx context.Context) (<-chan []model.SocialPost, error) {
			return h.repos.Social.PostsByUser(ctx, userId)
		})
		return
	}
	snapshot(c, h.repos.Social.AllPosts)
}

func (h *Handlers) getPost(c *gin.Context) {
	p, found, err := h.repos.Social.PostByID(c.Request.Context(), c.Param("id"))
	lookup(c, p, found, err)
}

func (h *Handlers) createPost(c *gin.Context) {
	p := model.NewSocialPost()
	if !bind(c, &p) {
		return
	}
	if err := h.repos.Social.CreatePost(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handlers) updatePost(c *gin.Context) {
	p := model.NewSocialPost()
	if !bind(c, &p) {
		return
	}
	p.Id = c.Param("id")
	done(c, h.repos.Social.UpdatePost(c.Request.Context(), p))
}

func (h *Handlers) deletePost(c *gin.Context) {
	done(c, h.repos.Social.DeletePost(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) likePost(c *gin.Context) {
	userId, ok := liker(c)
	if !ok {
		return
	}
	done(c, h.repos.Social.LikePost(c.Request.Context(), c.Param("id"), userId))
}

func (h *Handlers) listComments(c *gin.Context) {
	snapshot(c, func(ctx context.Context) (<-chan []model.Comment, error) {
		return h.repos.Social.CommentsByPost(ctx, c.Param("id"))
	})
}

func (h *Handlers) addComment(c *gin.Context) {
	comment := model.NewComment(c.Param("id"))
	if !bind(c, &comment) {
		return
	}
	comment.PostId = c.Param("id")
	if err := h.repos.Social.AddComment(c.Request.Context(), comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handlers) updateComment(c *gin.Context) {
	comment := model.NewComment("")
	if !bind(c, &comment) {
		return
	}
	comment.Id = c.Param("id")
	done(c, h.repos.Social.UpdateComment(c.Request.Context(), comment))
}

func (h *Handlers) deleteComment(c *gin.Context) {
	done(c, h.repos.Social.DeleteComment(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) likeComment(c *gin.Context) {
	userId, ok := liker(c)
	if !ok {
		return
	}
	done(c, h.repos.Social.LikeComment(c.Request.Context(), c.Param("id"), userId))
}

func (h *Handlers) listReplies(c *gin.Context) {
	snapshot(c, func(ctx context.Context) (<-chan []model.Reply, error) {
		return h.repos.Social.RepliesByComment(ctx, c.Param("id"))
	})
}

func (h *Handlers) addReply(c *gin.Context) {
	reply := model.NewReply(c.Param("id"))
	if !bind(c, &reply) {
		return
	}
	reply.CommentId = c.Param("id")
	if err := h.repos.Social.AddReply(c.Request.Context(), reply); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

func (h *Handlers) updateReply(c *gin.Context) {
	reply := model.NewReply("")
	if !bind(c, &reply) {
		return
	}
	reply.Id = c.Param("id")
	done(c, h.repos.Social.UpdateReply(c.Request.Context(), reply))
}

func (h *Handlers) deleteReply(c *gin.Context) {
	done(c, h.repos.Social.DeleteReply(c.Request.Context(), c.Param("id")))
}

func (h *Handlers) likeReply(c *gin.Context) {
	userId, ok := liker(c)
	if !ok {
		return
	}
	done(c, h.repos.Social.LikeReply(c.Request.Context(), c.Param("id"), userId))
}

func (h *Handlers) uploadSocialImage(c *gin.Context) {
	upload(c, h.repos.Social.UploadImage)
}
