package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*

SocialPost is a piece of content shared on the community feed

Id: primary key
UserId, UserName, UserProfileImageUrl: author, denormalized at creation time
Content: post text
Images: blob store URLs
CreatedAt, UpdatedAt: timestamps
Likes: ids of users who liked the post
Comments: embedded copy of every comment, kept alongside the independent
		Comment rows. The two are expected to agree but nothing enforces it.
IsActive: inactive posts are hidden from the feed

*/
type SocialPost struct {
	Id                  string                       `gorm:"primaryKey" json:"id"`
	UserId              string                       `gorm:"index" json:"userId"`
	UserName            string                       `json:"userName"`
	UserProfileImageUrl string                       `json:"userProfileImageUrl"`
	Content             string                       `json:"content"`
	Images              StringList                   `json:"images"`
	CreatedAt           time.Time                    `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt           time.Time                    `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Likes               StringList                   `json:"likes"`
	Comments            datatypes.JSONSlice[Comment] `json:"comments"`
	IsActive            bool                         `json:"isActive"`
}

func (SocialPost) TableName() string {
	return "social_posts"
}

func NewSocialPost() SocialPost {
	now := time.Now()
	return SocialPost{
		Id:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Images:    StringList{},
		Likes:     StringList{},
		Comments:  datatypes.JSONSlice[Comment]{},
		IsActive:  true,
	}
}

// Comment on a SocialPost. PostId is a back reference, the post doesn't own
// the comment row.
type Comment struct {
	Id                  string                     `gorm:"primaryKey" json:"id"`
	PostId              string                     `gorm:"index" json:"postId"`
	UserId              string                     `json:"userId"`
	UserName            string                     `json:"userName"`
	UserProfileImageUrl string                     `json:"userProfileImageUrl"`
	Content             string                     `json:"content"`
	CreatedAt           time.Time                  `gorm:"autoCreateTime:false" json:"createdAt"`
	Replies             datatypes.JSONSlice[Reply] `json:"replies"`
	Likes               StringList                 `json:"likes"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewComment(postId string) Comment {
	return Comment{
		Id:        uuid.New().String(),
		PostId:    postId,
		CreatedAt: time.Now(),
		Replies:   datatypes.JSONSlice[Reply]{},
		Likes:     StringList{},
	}
}

// Reply to a Comment, one level deep.
type Reply struct {
	Id                  string     `gorm:"primaryKey" json:"id"`
	CommentId           string     `gorm:"index" json:"commentId"`
	UserId              string     `json:"userId"`
	UserName            string     `json:"userName"`
	UserProfileImageUrl string     `json:"userProfileImageUrl"`
	Content             string     `json:"content"`
	CreatedAt           time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	Likes               StringList `json:"likes"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReply(commentId string) Reply {
	return Reply{
		Id:        uuid.New().String(),
		CommentId: commentId,
		CreatedAt: time.Now(),
		Likes:     StringList{},
	}
}
