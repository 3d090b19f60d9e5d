// Package seed writes the default content of a fresh installation: music
// categories, themes and the home page layout.
package seed

import (
	"context"
	"io/ioutil"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/repository"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Category struct {
	Id          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
	Icon        string `yaml:"icon"`
}

type Theme struct {
	Id              string `yaml:"id"`
	PrimaryColor    string `yaml:"primary_color"`
	SecondaryColor  string `yaml:"secondary_color"`
	BackgroundColor string `yaml:"background_color"`
	SurfaceColor    string `yaml:"surface_color"`
	TextColor       string `yaml:"text_color"`
	AccentColor     string `yaml:"accent_color"`
	FontFamily      string `yaml:"font_family"`
	Active          bool   `yaml:"active"`
}

type Element struct {
	Id      string  `yaml:"id"`
	Type    string  `yaml:"type"`
	Content string  `yaml:"content"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Hidden  bool    `yaml:"hidden"`
}

// Fixture is the content of a seed file.
type Fixture struct {
	Categories []Category `yaml:"categories"`
	Themes     []Theme    `yaml:"themes"`
	Elements   []Element  `yaml:"elements"`
}

func ParseFixture(path string) (Fixture, error) {
	var f Fixture
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return f, errors.Wrap(err, "read seed fixture")
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, errors.Wrap(err, "unmarshal seed fixture")
	}
	return f, nil
}

// Seeder writes a Fixture through the repositories, so the seeded rows land
// in the document store and the cache like any other write.
type Seeder struct {
	Music  *repository.MusicRepository
	Themes *repository.ThemeRepository
}

// Seed writes every entry of f. Entries keep their fixture ids so seeding
// twice overwrites instead of duplicating. At most one theme should be
// marked active, the last one wins.
func (s *Seeder) Seed(ctx context.Context, f Fixture) error {
	for _, c := range f.Categories {
		category := model.NewMusicCategory()
		category.Id = c.Id
		category.Name = c.Name
		category.Description = c.Description
		category.Color = c.Color
		category.Icon = c.Icon
		if err := s.Music.InsertCategory(ctx, category); err != nil {
			return errors.Wrapf(err, "seed category %s", c.Id)
		}
	}

	for _, t := range f.Themes {
		theme := model.NewAppTheme()
		theme.Id = t.Id
		theme.PrimaryColor = orDefault(t.PrimaryColor, theme.PrimaryColor)
		theme.SecondaryColor = orDefault(t.SecondaryColor, theme.SecondaryColor)
		theme.BackgroundColor = orDefault(t.BackgroundColor, theme.BackgroundColor)
		theme.SurfaceColor = orDefault(t.SurfaceColor, theme.SurfaceColor)
		theme.TextColor = orDefault(t.TextColor, theme.TextColor)
		theme.AccentColor = orDefault(t.AccentColor, theme.AccentColor)
		theme.FontFamily = orDefault(t.FontFamily, theme.FontFamily)
		theme.IsActive = t.Active
		if err := s.Themes.SaveTheme(ctx, theme); err != nil {
			return errors.Wrapf(err, "seed theme %s", t.Id)
		}
	}

	for _, e := range f.Elements {
		elementType, err := model.ParseUIElementType(e.Type)
		if err != nil {
			return errors.Wrapf(err, "seed element %s", e.Id)
		}
		element := model.NewUIElement()
		element.Id = e.Id
		element.Type = elementType
		element.Content = e.Content
		element.Position = model.UIPosition{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
		element.IsVisible = !e.Hidden
		if err := s.Themes.SaveElement(ctx, element); err != nil {
			return errors.Wrapf(err, "seed element %s", e.Id)
		}
	}

	Logger.Log.Infof("seeded %d categories, %d themes, %d elements", len(f.Categories), len(f.Themes), len(f.Elements))
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
