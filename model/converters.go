package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// ErrUnknownEnum is returned when a persisted enum name doesn't map to any
// known value.
var ErrUnknownEnum = errors.New("unknown enum name")

// StringList is persisted as a JSON array in a single text column, so items
// may contain any character. A NULL or empty column reads back as an empty
// list.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	v, err := datatypes.JSONSlice[string](l).Value()
	if err != nil {
		return nil, errors.Wrap(err, "encode string list")
	}
	return asString(v)
}

func (l *StringList) Scan(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	var items datatypes.JSONSlice[string]
	if s != "" {
		if err := items.Scan(s); err != nil {
			return errors.Wrapf(err, "decode string list %q", s)
		}
	}
	if items == nil {
		items = datatypes.JSONSlice[string]{}
	}
	*l = StringList(items)
	return nil
}

func (StringList) GormDataType() string {
	return "string"
}

// Contains returns true iff needle is in the list.
func (l StringList) Contains(needle string) bool {
	for _, s := range l {
		if s == needle {
			return true
		}
	}
	return false
}

func asString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into a string column", value)
	}
}

func scanEnum(value interface{}, parse func(string) error) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	return parse(s)
}

// unmarshalEnum decodes a JSON string and validates it with parse, so bad
// enum names are rejected when a request or document is decoded.
func unmarshalEnum(b []byte, parse func(string) error) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return parse(s)
}
