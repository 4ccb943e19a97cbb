package controller

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

// AdminProducts drives the admin product-management screen: the full
// unfiltered product table plus create and edit forms that submit as
// multipart so an image upload can ride along.
type AdminProducts struct {
	view

	catalog AdminCatalogGateway
	log     zerolog.Logger

	products   []domain.Product
	categories []domain.Category
}

func NewAdminProducts(catalog AdminCatalogGateway, log zerolog.Logger) *AdminProducts {
	return &AdminProducts{catalog: catalog, log: log}
}

// Load fetches products and categories. The category list exists only
// to populate the form's category picker, but an empty picker makes
// the form unusable, so both fetches are load-bearing here.
func (a *AdminProducts) Load(ctx context.Context) error {
	gen := a.begin()

	products, err := a.catalog.ListProducts(ctx, nil)
	var categories []domain.Category
	if err == nil {
		categories, err = a.catalog.ListCategories(ctx)
	}
	a.complete(gen, err, func() {
		a.products = products
		a.categories = categories
	})
	return err
}

// Create validates and submits a new product. An image is required on
// create; edits may keep the stored one.
func (a *AdminProducts) Create(ctx context.Context, form gateway.ProductForm) error {
	if err := a.checkProduct(form, true); err != nil {
		return err
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			_, err := a.catalog.CreateProduct(ctx, form)
			return err
		},
		a.refetchProducts,
	)
}

// Update validates and submits edits to an existing product. A nil
// form image means keep the current one; the field is omitted from the
// upload entirely.
func (a *AdminProducts) Update(ctx context.Context, productID int, form gateway.ProductForm) error {
	if err := a.checkProduct(form, false); err != nil {
		return err
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			_, err := a.catalog.UpdateProduct(ctx, productID, form)
			return err
		},
		a.refetchProducts,
	)
}

// Delete removes a product and refetches the table.
func (a *AdminProducts) Delete(ctx context.Context, productID int) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return a.catalog.DeleteProduct(ctx, productID) },
		a.refetchProducts,
	)
}

func (a *AdminProducts) checkProduct(form gateway.ProductForm, imageRequired bool) error {
	switch {
	case strings.TrimSpace(form.Name) == "":
		return validationErrorf("name is required")
	case strings.TrimSpace(form.Price) == "":
		return validationErrorf("price is required")
	case strings.TrimSpace(form.CategoryID) == "":
		return validationErrorf("category is required")
	case strings.TrimSpace(form.SKU) == "":
		return validationErrorf("sku is required")
	case imageRequired && form.Image == nil:
		return validationErrorf("image is required")
	}
	return nil
}

func (a *AdminProducts) refetchProducts(ctx context.Context) error {
	products, err := a.catalog.ListProducts(ctx, nil)
	if err != nil {
		return err
	}
	a.locked(func() { a.products = products })
	return nil
}

// Products returns the loaded product table.
func (a *AdminProducts) Products() []domain.Product {
	var out []domain.Product
	a.locked(func() { out = append(out, a.products...) })
	return out
}

// Categories returns the category picker options.
func (a *AdminProducts) Categories() []domain.Category {
	var out []domain.Category
	a.locked(func() { out = append(out, a.categories...) })
	return out
}
