package cache

import (
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/stream"
	"gorm.io/gorm"
)

// Store is the on-device cache. It owns one DAO per table, every DAO writes
// through the same gorm handle and announces changes on the same bus.
type Store struct {
	db  *gorm.DB
	bus *stream.Bus

	Users           *UserDAO
	Music           *MusicDAO
	MusicCategories *MusicCategoryDAO
	Posts           *SocialPostDAO
	Comments        *CommentDAO
	Replies         *ReplyDAO
	News            *NewsDAO
	NewsFiles       *NewsFileDAO
	NewsLinks       *NewsLinkDAO
	Themes          *AppThemeDAO
	Elements        *UIElementDAO
}

// NewStore wraps an already migrated database, see
// utils.DatabaseSetupAndMigration.
func NewStore(db *gorm.DB, bus *stream.Bus) *Store {
	return &Store{
		db:              db,
		bus:             bus,
		Users:           &UserDAO{newTable[model.User](db, bus)},
		Music:           &MusicDAO{newTable[model.Music](db, bus)},
		MusicCategories: &MusicCategoryDAO{newTable[model.MusicCategory](db, bus)},
		Posts:           &SocialPostDAO{newTable[model.SocialPost](db, bus)},
		Comments:        &CommentDAO{newTable[model.Comment](db, bus)},
		Replies:         &ReplyDAO{newTable[model.Reply](db, bus)},
		News:            &NewsDAO{newTable[model.News](db, bus)},
		NewsFiles:       &NewsFileDAO{newTable[model.NewsFile](db, bus)},
		NewsLinks:       &NewsLinkDAO{newTable[model.NewsLink](db, bus)},
		Themes:          &AppThemeDAO{newTable[model.AppTheme](db, bus)},
		Elements:        &UIElementDAO{newTable[model.UIElement](db, bus)},
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Bus() *stream.Bus {
	return s.bus
}
