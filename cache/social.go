package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"gorm.io/gorm"
)

type SocialPostDAO struct {
	table[model.SocialPost]
}

func (d *SocialPostDAO) WatchActive(ctx context.Context) (<-chan []model.SocialPost, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("created_at desc")
	})
}

func (d *SocialPostDAO) WatchByUser(ctx context.Context, userId string) (<-chan []model.SocialPost, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND is_active = ?", userId, true).Order("created_at desc")
	})
}

type CommentDAO struct {
	table[model.Comment]
}

// WatchByPost streams the comments of a post, oldest first.
func (d *CommentDAO) WatchByPost(ctx context.Context, postId string) (<-chan []model.Comment, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id = ?", postId).Order("created_at")
	})
}

type ReplyDAO struct {
	table[model.Reply]
}

// WatchByComment streams the replies to a comment, oldest first.
func (d *ReplyDAO) WatchByComment(ctx context.Context, commentId string) (<-chan []model.Reply, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("comment_id = ?", commentId).Order("created_at")
	})
}
