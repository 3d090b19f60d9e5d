package repository

import (
	"context"
	"io"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"gorm.io/datatypes"
)

const SocialImageDir = "social_images/"

// SocialRepository manages the community feed. Comments and replies are
// stored on their own and also embedded in their parent, the embedded copy
// is rewritten after every add or delete. The two steps are not atomic.
type SocialRepository struct {
	base
}

func NewSocialRepository(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) *SocialRepository {
	return &SocialRepository{newBase(store, docs, blobs)}
}

func (r *SocialRepository) AllPosts(ctx context.Context) (<-chan []model.SocialPost, error) {
	return r.store.Posts.WatchActive(ctx)
}

func (r *SocialRepository) PostsByUser(ctx context.Context, userId string) (<-chan []model.SocialPost, error) {
	return r.store.Posts.WatchByUser(ctx, userId)
}

func (r *SocialRepository) PostByID(ctx context.Context, id string) (model.SocialPost, bool, error) {
	return r.store.Posts.ByID(ctx, id)
}

func (r *SocialRepository) CommentsByPost(ctx context.Context, postId string) (<-chan []model.Comment, error) {
	return r.store.Comments.WatchByPost(ctx, postId)
}

func (r *SocialRepository) CommentByID(ctx context.Context, id string) (model.Comment, bool, error) {
	return r.store.Comments.ByID(ctx, id)
}

func (r *SocialRepository) RepliesByComment(ctx context.Context, commentId string) (<-chan []model.Reply, error) {
	return r.store.Replies.WatchByComment(ctx, commentId)
}

func (r *SocialRepository) ReplyByID(ctx context.Context, id string) (model.Reply, bool, error) {
	return r.store.Replies.ByID(ctx, id)
}

func (r *SocialRepository) CreatePost(ctx context.Context, post model.SocialPost) error {
	return write[model.SocialPost](ctx, r.base, r.store.Posts, post.Id, post)
}

func (r *SocialRepository) UpdatePost(ctx context.Context, post model.SocialPost) error {
	return write[model.SocialPost](ctx, r.base, r.store.Posts, post.Id, post)
}

func (r *SocialRepository) DeletePost(ctx context.Context, id string) error {
	return remove[model.SocialPost](ctx, r.base, r.store.Posts, id)
}

// LikePost toggles userId in the post's likes. Concurrent toggles race, the
// last write wins.
func (r *SocialRepository) LikePost(ctx context.Context, postId, userId string) error {
	return modify[model.SocialPost](ctx, r.base, r.store.Posts, postId, func(p *model.SocialPost) {
		p.Likes = toggle(p.Likes, userId)
	})
}

func (r *SocialRepository) LikeComment(ctx context.Context, commentId, userId string) error {
	return modify[model.Comment](ctx, r.base, r.store.Comments, commentId, func(c *model.Comment) {
		c.Likes = toggle(c.Likes, userId)
	})
}

func (r *SocialRepository) LikeReply(ctx context.Context, replyId, userId string) error {
	return modify[model.Reply](ctx, r.base, r.store.Replies, replyId, func(rp *model.Reply) {
		rp.Likes = toggle(rp.Likes, userId)
	})
}

// AddComment stores the comment, then appends it to the parent post.
func (r *SocialRepository) AddComment(ctx context.Context, comment model.Comment) error {
	if err := write[model.Comment](ctx, r.base, r.store.Comments, comment.Id, comment); err != nil {
		return err
	}
	return modify[model.SocialPost](ctx, r.base, r.store.Posts, comment.PostId, func(p *model.SocialPost) {
		comments := make(datatypes.JSONSlice[model.Comment], 0, len(p.Comments)+1)
		p.Comments = append(append(comments, p.Comments...), comment)
	})
}

func (r *SocialRepository) UpdateComment(ctx context.Context, comment model.Comment) error {
	return write[model.Comment](ctx, r.base, r.store.Comments, comment.Id, comment)
}

// DeleteComment deletes the comment and filters it out of the parent post.
// The cached comment names the parent, if it is already gone only the
// remote document is deleted.
func (r *SocialRepository) DeleteComment(ctx context.Context, commentId string) error {
	comment, found, err := r.store.Comments.ByID(ctx, commentId)
	if err != nil {
		return err
	}
	if err := remove[model.Comment](ctx, r.base, r.store.Comments, commentId); err != nil {
		return err
	}
	if !found {
		Logger.Log.Infof("comment %s not cached, parent post left as is", commentId)
		return nil
	}
	return modify[model.SocialPost](ctx, r.base, r.store.Posts, comment.PostId, func(p *model.SocialPost) {
		p.Comments = withoutComment(p.Comments, commentId)
	})
}

// AddReply stores the reply, then appends it to the parent comment.
func (r *SocialRepository) AddReply(ctx context.Context, reply model.Reply) error {
	if err := write[model.Reply](ctx, r.base, r.store.Replies, reply.Id, reply); err != nil {
		return err
	}
	return modify[model.Comment](ctx, r.base, r.store.Comments, reply.CommentId, func(c *model.Comment) {
		replies := make(datatypes.JSONSlice[model.Reply], 0, len(c.Replies)+1)
		c.Replies = append(append(replies, c.Replies...), reply)
	})
}

func (r *SocialRepository) UpdateReply(ctx context.Context, reply model.Reply) error {
	return write[model.Reply](ctx, r.base, r.store.Replies, reply.Id, reply)
}

// DeleteReply mirrors DeleteComment one level down.
func (r *SocialRepository) DeleteReply(ctx context.Context, replyId string) error {
	reply, found, err := r.store.Replies.ByID(ctx, replyId)
	if err != nil {
		return err
	}
	if err := remove[model.Reply](ctx, r.base, r.store.Replies, replyId); err != nil {
		return err
	}
	if !found {
		Logger.Log.Infof("reply %s not cached, parent comment left as is", replyId)
		return nil
	}
	return modify[model.Comment](ctx, r.base, r.store.Comments, reply.CommentId, func(c *model.Comment) {
		c.Replies = withoutReply(c.Replies, replyId)
	})
}

func (r *SocialRepository) UploadImage(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	return r.upload(ctx, SocialImageDir, fileName, body, contentType)
}

func withoutComment(comments []model.Comment, id string) datatypes.JSONSlice[model.Comment] {
	out := make(datatypes.JSONSlice[model.Comment], 0, len(comments))
	for _, c := range comments {
		if c.Id != id {
			out = append(out, c)
		}
	}
	return out
}

func withoutReply(replies []model.Reply, id string) datatypes.JSONSlice[model.Reply] {
	out := make(datatypes.JSONSlice[model.Reply], 0, len(replies))
	for _, r := range replies {
		if r.Id != id {
			out = append(out, r)
		}
	}
	return out
}
