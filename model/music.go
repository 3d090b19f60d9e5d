package model

import (
	"time"

	"github.com/google/uuid"
)

/*

Music is a single piece in the choir library

Id: primary key
Title, Artist: display metadata
Category: free text category name, not a foreign key to MusicCategory
Month, Year: the rehearsal period this piece belongs to
ThumbnailUrl, AudioUrl: blob store URLs
Lyrics: full text
Duration: length in milliseconds
UploadedBy: id of the uploading user
UploadedAt: upload time, newest first in every list
IsActive: inactive music is hidden from lists but still readable by id

*/
type Music struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	Category     string    `gorm:"index" json:"category"`
	Month        string    `json:"month"`
	Year         int       `gorm:"index" json:"year"`
	ThumbnailUrl string    `json:"thumbnailUrl"`
	AudioUrl     string    `json:"audioUrl"`
	Lyrics       string    `json:"lyrics"`
	Duration     int64     `json:"duration"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	IsActive     bool      `json:"isActive"`
}

func (Music) TableName() string {
	return "music"
}

func NewMusic() Music {
	return Music{
		Id:         uuid.New().String(),
		UploadedAt: time.Now(),
		IsActive:   true,
	}
}

// MusicCategory is an admin curated category shown on the library page.
type MusicCategory struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}

func (MusicCategory) TableName() string {
	return "music_categories"
}

func NewMusicCategory() MusicCategory {
	return MusicCategory{
		Id:        uuid.New().String(),
		Color:     "#6200EE",
		Icon:      "music_note",
		CreatedAt: time.Now(),
	}
}
