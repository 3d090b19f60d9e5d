package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

/*

News is an announcement on the choir news board

Id: primary key
Title, Content, Summary: text
Images: blob store URLs
Files, Links: embedded attachment lists, each item is also stored in its
		own table so it can be listed per news
Category: free text, "General" by default
Priority: LOW, NORMAL, HIGH or URGENT
PublishedBy: id of the publishing admin
PublishedAt: set when the news is published
UpdatedAt: last edit
IsPublished: drafts are false
IsActive: inactive news is hidden from every list

*/
type News struct {
	Id          string                        `gorm:"primaryKey" json:"id"`
	Title       string                        `json:"title"`
	Content     string                        `json:"content"`
	Summary     string                        `json:"summary"`
	Images      StringList                    `json:"images"`
	Files       datatypes.JSONSlice[NewsFile] `json:"files"`
	Links       datatypes.JSONSlice[NewsLink] `json:"links"`
	Category    string                        `gorm:"index" json:"category"`
	Priority    NewsPriority                  `json:"priority"`
	PublishedBy string                        `json:"publishedBy"`
	PublishedAt time.Time                     `json:"publishedAt"`
	UpdatedAt   time.Time                     `gorm:"autoUpdateTime:false" json:"updatedAt"`
	IsPublished bool                          `json:"isPublished"`
	IsActive    bool                          `json:"isActive"`
}

func (News) TableName() string {
	return "news"
}

func NewNews() News {
	now := time.Now()
	return News{
		Id:          uuid.New().String(),
		Images:      StringList{},
		Files:       datatypes.JSONSlice[NewsFile]{},
		Links:       datatypes.JSONSlice[NewsLink]{},
		Category:    "General",
		Priority:    NewsPriorityNormal,
		PublishedAt: now,
		UpdatedAt:   now,
		IsActive:    true,
	}
}

// NewsFile is a file attached to a News.
type NewsFile struct {
	Id     string `gorm:"primaryKey" json:"id"`
	NewsId string `gorm:"index" json:"newsId"`
	Name   string `json:"name"`
	Url    string `json:"url"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
}

func (NewsFile) TableName() string {
	return "news_files"
}

// NewsLink is an external link attached to a News.
type NewsLink struct {
	Id          string `gorm:"primaryKey" json:"id"`
	NewsId      string `gorm:"index" json:"newsId"`
	Title       string `json:"title"`
	Url         string `json:"url"`
	Description string `json:"description"`
}

func (NewsLink) TableName() string {
	return "news_links"
}

type NewsPriority string

const (
	NewsPriorityLow    NewsPriority = "LOW"
	NewsPriorityNormal NewsPriority = "NORMAL"
	NewsPriorityHigh   NewsPriority = "HIGH"
	NewsPriorityUrgent NewsPriority = "URGENT"
)

var AllNewsPriority = []NewsPriority{
	NewsPriorityLow,
	NewsPriorityNormal,
	NewsPriorityHigh,
	NewsPriorityUrgent,
}

func (e NewsPriority) IsValid() bool {
	switch e {
	case NewsPriorityLow, NewsPriorityNormal, NewsPriorityHigh, NewsPriorityUrgent:
		return true
	}
	return false
}

func (e NewsPriority) String() string {
	return string(e)
}

func ParseNewsPriority(name string) (NewsPriority, error) {
	p := NewsPriority(name)
	if !p.IsValid() {
		return "", errors.Wrapf(ErrUnknownEnum, "news priority %q", name)
	}
	return p, nil
}

func (e NewsPriority) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, errors.Wrapf(ErrUnknownEnum, "news priority %q", string(e))
	}
	return string(e), nil
}

func (e *NewsPriority) Scan(value interface{}) error {
	return scanEnum(value, func(s string) (err error) {
		*e, err = ParseNewsPriority(s)
		return err
	})
}

func (e *NewsPriority) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, func(s string) (err error) {
		*e, err = ParseNewsPriority(s)
		return err
	})
}
