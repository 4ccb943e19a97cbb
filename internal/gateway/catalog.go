package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Catalog covers products, categories, and reviews, including the
// staff-only mutations.
type Catalog struct {
	client *transport.Client
}

// NewCatalog creates the catalog gateway.
func NewCatalog(client *transport.Client) *Catalog {
	return &Catalog{client: client}
}

// ListProducts fetches the product listing, optionally filtered by the
// backend-understood query parameters (category, gender, search, ...).
func (g *Catalog) ListProducts(ctx context.Context, filters url.Values) ([]domain.Product, error) {
	resp, err := g.client.Get(ctx, "/products/products/", filters)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Product](resp)
}

// GetProduct fetches one product by id.
func (g *Catalog) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	resp, err := g.client.Get(ctx, fmt.Sprintf("/products/products/%d/", id), nil)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeOne[domain.Product](resp)
}

// ListCategories fetches all categories.
func (g *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	resp, err := g.client.Get(ctx, "/products/categories/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Category](resp)
}

// CreateCategory creates a category (staff only).
func (g *Catalog) CreateCategory(ctx context.Context, name, description string) (domain.Category, error) {
	resp, err := g.client.Post(ctx, "/products/categories/", map[string]string{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return domain.Category{}, err
	}
	return decodeOne[domain.Category](resp)
}

// UpdateCategory updates a category (staff only).
func (g *Catalog) UpdateCategory(ctx context.Context, id int, name, description string) (domain.Category, error) {
	resp, err := g.client.Put(ctx, fmt.Sprintf("/products/categories/%d/", id), map[string]string{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return domain.Category{}, err
	}
	return decodeOne[domain.Category](resp)
}

// DeleteCategory deletes a category (staff only).
func (g *Catalog) DeleteCategory(ctx context.Context, id int) error {
	resp, err := g.client.Delete(ctx, fmt.Sprintf("/products/categories/%d/", id))
	if err != nil {
		return err
	}
	return discard(resp)
}

// ListReviews fetches the reviews of one product.
func (g *Catalog) ListReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	resp, err := g.client.Get(ctx, fmt.Sprintf("/products/products/%d/reviews/", productID), nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Review](resp)
}

// AddReview posts a rating and comment for a product.
func (g *Catalog) AddReview(ctx context.Context, productID, rating int, comment string) error {
	resp, err := g.client.Post(ctx, fmt.Sprintf("/products/%d/add_review/", productID), map[string]any{
		"rating":  rating,
		"comment": comment,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}

// ProductForm carries the admin product fields. Image is optional: a
// nil reader means the field is omitted from the request entirely, so an
// edit without a replacement image keeps the stored one.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	CostPrice   string
	CategoryID  string
	Gender      string
	Size        string
	Color       string
	Material    string
	Stock       string
	SKU         string
	IsActive    bool
	Image       io.Reader
	ImageName   string
}

func (f ProductForm) fields() map[string]string {
	costPrice := f.CostPrice
	if costPrice == "" {
		costPrice = "0"
	}
	stock := f.Stock
	if stock == "" {
		stock = "0"
	}
	active := "false"
	if f.IsActive {
		active = "true"
	}
	return map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
		"cost_price":  costPrice,
		"category_id": f.CategoryID,
		"gender":      f.Gender,
		"size":        f.Size,
		"color":       f.Color,
		"material":    f.Material,
		"stock":       stock,
		"sku":         f.SKU,
		"is_active":   active,
	}
}

// CreateProduct creates a product via multipart form data (staff only).
func (g *Catalog) CreateProduct(ctx context.Context, form ProductForm) (domain.Product, error) {
	resp, err := g.client.DoMultipart(ctx, http.MethodPost, "/products/products/",
		form.fields(), "image", form.ImageName, form.Image)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeOne[domain.Product](resp)
}

// UpdateProduct updates a product via multipart form data (staff only).
func (g *Catalog) UpdateProduct(ctx context.Context, id int, form ProductForm) (domain.Product, error) {
	resp, err := g.client.DoMultipart(ctx, http.MethodPut, fmt.Sprintf("/products/products/%d/", id),
		form.fields(), "image", form.ImageName, form.Image)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeOne[domain.Product](resp)
}

// DeleteProduct deletes a product (staff only).
func (g *Catalog) DeleteProduct(ctx context.Context, id int) error {
	resp, err := g.client.Delete(ctx, fmt.Sprintf("/products/products/%d/", id))
	if err != nil {
		return err
	}
	return discard(resp)
}
