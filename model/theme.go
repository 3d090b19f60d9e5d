package model

import (
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultThemeId identifies the built-in fallback theme. It is never stored.
const DefaultThemeId = "default"

/*

AppTheme is an admin defined color scheme for the app

Id: primary key
PrimaryColor ... AccentColor: hex colors, "#RRGGBB"
FontFamily: font name
LogoUrl, BackgroundImageUrl: blob store URLs
IsActive: at most one theme is active at a time

*/
type AppTheme struct {
	Id                 string `gorm:"primaryKey" json:"id"`
	PrimaryColor       string `json:"primaryColor"`
	SecondaryColor     string `json:"secondaryColor"`
	BackgroundColor    string `json:"backgroundColor"`
	SurfaceColor       string `json:"surfaceColor"`
	TextColor          string `json:"textColor"`
	AccentColor        string `json:"accentColor"`
	FontFamily         string `json:"fontFamily"`
	LogoUrl            string `json:"logoUrl"`
	BackgroundImageUrl string `json:"backgroundImageUrl"`
	IsActive           bool   `json:"isActive"`
}

func (AppTheme) TableName() string {
	return "app_themes"
}

func NewAppTheme() AppTheme {
	t := DefaultTheme()
	t.Id = uuid.New().String()
	return t
}

// DefaultTheme is what the UI falls back to when no theme is active.
func DefaultTheme() AppTheme {
	return AppTheme{
		Id:              DefaultThemeId,
		PrimaryColor:    "#6200EE",
		SecondaryColor:  "#03DAC6",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#F5F5F5",
		TextColor:       "#000000",
		AccentColor:     "#FF6B6B",
		FontFamily:      "Roboto",
		IsActive:        true,
	}
}

// UIElement is a single admin editable block on a page.
type UIElement struct {
	Id         string        `gorm:"primaryKey" json:"id"`
	Type       UIElementType `gorm:"index" json:"type"`
	Content    string        `json:"content"`
	Position   UIPosition    `gorm:"embedded;embeddedPrefix:position_" json:"position"`
	Style      UIStyle       `gorm:"embedded;embeddedPrefix:style_" json:"style"`
	IsVisible  bool          `json:"isVisible"`
	IsEditable bool          `json:"isEditable"`
}

func (UIElement) TableName() string {
	return "ui_elements"
}

func NewUIElement() UIElement {
	return UIElement{
		Id:   uuid.New().String(),
		Type: UIElementTypeText,
		Position: UIPosition{
			Width:  100,
			Height: 50,
		},
		Style: UIStyle{
			FontSize:        16,
			FontColor:       "#000000",
			BackgroundColor: "#FFFFFF",
			BorderRadius:    8,
			Padding:         16,
			Margin:          8,
		},
		IsVisible:  true,
		IsEditable: true,
	}
}

type UIPosition struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type UIStyle struct {
	FontSize        float64 `json:"fontSize"`
	FontColor       string  `json:"fontColor"`
	BackgroundColor string  `json:"backgroundColor"`
	BorderRadius    float64 `json:"borderRadius"`
	Padding         float64 `json:"padding"`
	Margin          float64 `json:"margin"`
}

type UIElementType string

const (
	UIElementTypeText     UIElementType = "TEXT"
	UIElementTypeImage    UIElementType = "IMAGE"
	UIElementTypeButton   UIElementType = "BUTTON"
	UIElementTypeCategory UIElementType = "CATEGORY"
	UIElementTypePage     UIElementType = "PAGE"
)

var AllUIElementType = []UIElementType{
	UIElementTypeText,
	UIElementTypeImage,
	UIElementTypeButton,
	UIElementTypeCategory,
	UIElementTypePage,
}

func (e UIElementType) IsValid() bool {
	switch e {
	case UIElementTypeText, UIElementTypeImage, UIElementTypeButton, UIElementTypeCategory, UIElementTypePage:
		return true
	}
	return false
}

func (e UIElementType) String() string {
	return string(e)
}

func ParseUIElementType(name string) (UIElementType, error) {
	t := UIElementType(name)
	if !t.IsValid() {
		return "", errors.Wrapf(ErrUnknownEnum, "ui element type %q", name)
	}
	return t, nil
}

func (e UIElementType) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, errors.Wrapf(ErrUnknownEnum, "ui element type %q", string(e))
	}
	return string(e), nil
}

func (e *UIElementType) Scan(value interface{}) error {
	return scanEnum(value, func(s string) (err error) {
		*e, err = ParseUIElementType(s)
		return err
	})
}

func (e *UIElementType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, func(s string) (err error) {
		*e, err = ParseUIElementType(s)
		return err
	})
}
