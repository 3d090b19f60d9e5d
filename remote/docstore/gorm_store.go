package docstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is a row of the documents table, one per collection and id.
type Document struct {
	Collection string         `gorm:"primaryKey"`
	Id         string         `gorm:"primaryKey"`
	Body       datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

func (Document) TableName() string {
	return "documents"
}

// GormStore keeps documents in a single SQL table, normally a hosted
// postgres shared by every client.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the documents table if needed.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, errors.Wrap(err, "migrate documents table")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Set(ctx context.Context, collection, id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s/%s", collection, id)
	}
	row := Document{Collection: collection, Id: id, Body: datatypes.JSON(body)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	return errors.Wrapf(err, "set %s/%s", collection, id)
}

func (s *GormStore) Get(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	var row Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "get %s/%s", collection, id)
	}
	return true, errors.Wrapf(json.Unmarshal(row.Body, out), "decode %s/%s", collection, id)
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&Document{}).Error
	return errors.Wrapf(err, "delete %s/%s", collection, id)
}
