package controller

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// AdminCategories drives the admin category screen: a flat name list
// with create, rename, and delete.
type AdminCategories struct {
	view

	catalog AdminCatalogGateway
	log     zerolog.Logger

	categories []domain.Category
}

func NewAdminCategories(catalog AdminCatalogGateway, log zerolog.Logger) *AdminCategories {
	return &AdminCategories{catalog: catalog, log: log}
}

// Load fetches the category list.
func (a *AdminCategories) Load(ctx context.Context) error {
	gen := a.begin()
	categories, err := a.catalog.ListCategories(ctx)
	a.complete(gen, err, func() { a.categories = categories })
	return err
}

// Create adds a category. The name must be non-blank; a blank name
// makes no network call.
func (a *AdminCategories) Create(ctx context.Context, name, description string) error {
	if strings.TrimSpace(name) == "" {
		return validationErrorf("name is required")
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			_, err := a.catalog.CreateCategory(ctx, name, description)
			return err
		},
		a.Load,
	)
}

// Update renames a category.
func (a *AdminCategories) Update(ctx context.Context, categoryID int, name, description string) error {
	if strings.TrimSpace(name) == "" {
		return validationErrorf("name is required")
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			_, err := a.catalog.UpdateCategory(ctx, categoryID, name, description)
			return err
		},
		a.Load,
	)
}

// Delete removes a category.
func (a *AdminCategories) Delete(ctx context.Context, categoryID int) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return a.catalog.DeleteCategory(ctx, categoryID) },
		a.Load,
	)
}

// Categories returns the loaded list.
func (a *AdminCategories) Categories() []domain.Category {
	var out []domain.Category
	a.locked(func() { out = append(out, a.categories...) })
	return out
}
