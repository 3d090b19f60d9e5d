package repository

import (
	"context"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateKeepsSingleActiveTheme(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	active, err := f.themes.ActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTheme(), active)

	a := model.NewAppTheme()
	a.PrimaryColor = "#111111"
	b := model.NewAppTheme()
	b.PrimaryColor = "#222222"
	b.IsActive = false
	c := model.NewAppTheme()
	c.IsActive = false
	for _, theme := range []model.AppTheme{a, b, c} {
		require.NoError(t, f.themes.SaveTheme(ctx, theme))
	}

	changes, err := f.themes.ActiveThemeChanges(ctx)
	require.NoError(t, err)
	next(t, changes, func(theme model.AppTheme) bool { return theme.Id == a.Id })

	require.NoError(t, f.themes.Activate(ctx, b.Id))
	next(t, changes, func(theme model.AppTheme) bool { return theme.Id == b.Id })

	themes, err := f.themes.Themes(ctx)
	require.NoError(t, err)
	snapshot := next(t, themes, func(ts []model.AppTheme) bool { return len(ts) == 3 })
	for _, theme := range snapshot {
		assert.Equal(t, theme.Id == b.Id, theme.IsActive, theme.Id)
	}

	active, err = f.themes.ActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#222222", active.PrimaryColor)

	// Deleting the active theme falls back to the default.
	require.NoError(t, f.themes.DeleteTheme(ctx, b.Id))
	_, found, err := f.themes.ThemeByID(ctx, b.Id)
	require.NoError(t, err)
	assert.False(t, found)
	next(t, changes, func(theme model.AppTheme) bool { return theme.Id == model.DefaultThemeId })
}

func TestSaveActiveThemeDeactivatesOthers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	first := model.NewAppTheme()
	require.NoError(t, f.themes.SaveTheme(ctx, first))
	require.NoError(t, f.themes.Activate(ctx, first.Id))

	fresh := model.NewAppTheme()
	require.True(t, fresh.IsActive)
	require.NoError(t, f.themes.SaveTheme(ctx, fresh))

	themes, err := f.themes.Themes(ctx)
	require.NoError(t, err)
	snapshot := next(t, themes, func(ts []model.AppTheme) bool { return len(ts) == 2 })
	activeCount := 0
	for _, theme := range snapshot {
		if theme.IsActive {
			activeCount++
			assert.Equal(t, fresh.Id, theme.Id)
		}
	}
	assert.Equal(t, 1, activeCount)

	// Saving an inactive theme leaves the active one alone.
	quiet := model.NewAppTheme()
	quiet.IsActive = false
	require.NoError(t, f.themes.SaveTheme(ctx, quiet))
	active, err := f.themes.ActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh.Id, active.Id)
}

func TestUIElements(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	header := model.NewUIElement()
	header.Content = "Welcome"
	header.Position.Y = 0
	button := model.NewUIElement()
	button.Type = model.UIElementTypeButton
	button.Content = "Join us"
	button.Position.Y = 200
	banner := model.NewUIElement()
	banner.Type = model.UIElementTypeImage
	banner.Position.Y = 100
	for _, e := range []model.UIElement{button, header, banner} {
		require.NoError(t, f.themes.SaveElement(ctx, e))
	}

	got, found, err := f.themes.ElementByID(ctx, button.Id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, button, got)

	visible, err := f.themes.VisibleElements(ctx)
	require.NoError(t, err)
	snapshot := next(t, visible, func(es []model.UIElement) bool { return len(es) == 3 })
	assert.Equal(t, []string{header.Id, banner.Id, button.Id}, []string{snapshot[0].Id, snapshot[1].Id, snapshot[2].Id})

	buttons, err := f.themes.ElementsByType(ctx, model.UIElementTypeButton)
	require.NoError(t, err)
	next(t, buttons, func(es []model.UIElement) bool { return len(es) == 1 && es[0].Id == button.Id })

	require.NoError(t, f.themes.SetElementVisibility(ctx, banner.Id, false))
	snapshot = next(t, visible, func(es []model.UIElement) bool { return len(es) == 2 })
	assert.Equal(t, header.Id, snapshot[0].Id)

	var remote model.UIElement
	_, err = f.docs.Get(ctx, "ui_elements", banner.Id, &remote)
	require.NoError(t, err)
	assert.False(t, remote.IsVisible)

	require.NoError(t, f.themes.DeleteElement(ctx, button.Id))
	next(t, buttons, func(es []model.UIElement) bool { return len(es) == 0 })
}
