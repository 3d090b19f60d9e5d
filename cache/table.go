package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/stream"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tabler interface {
	TableName() string
}

// scope narrows and orders a list query, e.g. a Where followed by an Order.
type scope func(*gorm.DB) *gorm.DB

// table implements the operations every cached entity supports. Rows are
// keyed by an "id" primary key.
type table[T tabler] struct {
	db    *gorm.DB
	bus   *stream.Bus
	name  string
	topic string
}

func newTable[T tabler](db *gorm.DB, bus *stream.Bus) table[T] {
	var zero T
	return table[T]{
		db:    db,
		bus:   bus,
		name:  zero.TableName(),
		topic: stream.TableTopic(zero.TableName()),
	}
}

// Name of the underlying table, also used as the remote collection name.
func (t table[T]) Name() string {
	return t.name
}

// ByID returns the row with the given id, found is false if there is none.
func (t table[T]) ByID(ctx context.Context, id string) (row T, found bool, err error) {
	err = t.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, errors.Wrapf(err, "get %s/%s", t.name, id)
	}
	return row, true, nil
}

// Upsert inserts row or replaces every column of the existing row with the
// same id.
func (t table[T]) Upsert(ctx context.Context, row T) error {
	err := t.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return errors.Wrapf(err, "upsert into %s", t.name)
	}
	t.bus.Notify(t.topic)
	return nil
}

// Delete removes the row carrying row's id.
func (t table[T]) Delete(ctx context.Context, row T) error {
	if err := t.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return errors.Wrapf(err, "delete from %s", t.name)
	}
	t.bus.Notify(t.topic)
	return nil
}

func (t table[T]) find(ctx context.Context, s scope) ([]T, error) {
	rows := []T{}
	if err := t.db.WithContext(ctx).Scopes(s).Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", t.name)
	}
	return rows, nil
}

func (t table[T]) watch(ctx context.Context, s scope) (<-chan []T, error) {
	return stream.Watch(ctx, t.bus, t.topic, func(ctx context.Context) ([]T, error) {
		return t.find(ctx, s)
	})
}

// pluck watches the distinct values of a single column.
func pluck[V any, T tabler](ctx context.Context, t table[T], column string, s scope) (<-chan []V, error) {
	return stream.Watch(ctx, t.bus, t.topic, func(ctx context.Context) ([]V, error) {
		values := []V{}
		var zero T
		err := t.db.WithContext(ctx).Model(&zero).Scopes(s).Distinct(column).Pluck(column, &values).Error
		if err != nil {
			return nil, errors.Wrapf(err, "pluck %s.%s", t.name, column)
		}
		return values, nil
	})
}

// update sets columns on every row matched by s, without loading them.
func (t table[T]) update(ctx context.Context, s scope, columns map[string]interface{}) error {
	var zero T
	if err := t.db.WithContext(ctx).Model(&zero).Scopes(s).Updates(columns).Error; err != nil {
		return errors.Wrapf(err, "update %s", t.name)
	}
	t.bus.Notify(t.topic)
	return nil
}

func byID(id string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}
