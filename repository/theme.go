package repository

import (
	"context"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
)

// ThemeRepository manages app themes and the admin editable UI layout.
type ThemeRepository struct {
	base
}

func NewThemeRepository(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) *ThemeRepository {
	return &ThemeRepository{newBase(store, docs, blobs)}
}

func (r *ThemeRepository) Themes(ctx context.Context) (<-chan []model.AppTheme, error) {
	return r.store.Themes.WatchAll(ctx)
}

func (r *ThemeRepository) ThemeByID(ctx context.Context, id string) (model.AppTheme, bool, error) {
	return r.store.Themes.ByID(ctx, id)
}

// SaveTheme writes the theme. Saving an active theme activates it, which
// deactivates every other theme.
func (r *ThemeRepository) SaveTheme(ctx context.Context, theme model.AppTheme) error {
	if err := write[model.AppTheme](ctx, r.base, r.store.Themes, theme.Id, theme); err != nil {
		return err
	}
	if !theme.IsActive {
		return nil
	}
	return r.Activate(ctx, theme.Id)
}

func (r *ThemeRepository) DeleteTheme(ctx context.Context, id string) error {
	return remove[model.AppTheme](ctx, r.base, r.store.Themes, id)
}

// Activate makes id the only active theme. This is two cache updates without
// a transaction, a failure in between leaves no theme active and the UI
// falls back to model.DefaultTheme.
func (r *ThemeRepository) Activate(ctx context.Context, id string) error {
	if err := r.store.Themes.DeactivateAll(ctx); err != nil {
		return err
	}
	return r.store.Themes.Activate(ctx, id)
}

// ActiveTheme returns the active theme, or the default theme when none is.
func (r *ThemeRepository) ActiveTheme(ctx context.Context) (model.AppTheme, error) {
	theme, found, err := r.store.Themes.Active(ctx)
	if err != nil {
		return model.AppTheme{}, err
	}
	if !found {
		return model.DefaultTheme(), nil
	}
	return theme, nil
}

// ActiveThemeChanges streams ActiveTheme after every theme change.
func (r *ThemeRepository) ActiveThemeChanges(ctx context.Context) (<-chan model.AppTheme, error) {
	return stream.Watch(ctx, r.bus, stream.TableTopic(r.store.Themes.Name()), r.ActiveTheme)
}

// VisibleElements streams visible UI elements top to bottom.
func (r *ThemeRepository) VisibleElements(ctx context.Context) (<-chan []model.UIElement, error) {
	return r.store.Elements.WatchVisible(ctx)
}

func (r *ThemeRepository) ElementsByType(ctx context.Context, elementType model.UIElementType) (<-chan []model.UIElement, error) {
	return r.store.Elements.WatchByType(ctx, elementType)
}

func (r *ThemeRepository) ElementByID(ctx context.Context, id string) (model.UIElement, bool, error) {
	return r.store.Elements.ByID(ctx, id)
}

func (r *ThemeRepository) SaveElement(ctx context.Context, element model.UIElement) error {
	return write[model.UIElement](ctx, r.base, r.store.Elements, element.Id, element)
}

func (r *ThemeRepository) DeleteElement(ctx context.Context, id string) error {
	return remove[model.UIElement](ctx, r.base, r.store.Elements, id)
}

// SetElementVisibility shows or hides an element. Unknown ids are ignored.
func (r *ThemeRepository) SetElementVisibility(ctx context.Context, id string, isVisible bool) error {
	return modify[model.UIElement](ctx, r.base, r.store.Elements, id, func(e *model.UIElement) {
		e.IsVisible = isVisible
	})
}
