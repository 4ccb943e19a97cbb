package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// recommendCount is how many recommendations each screen asks for.
const recommendCount = 5

// AllCategories is the catalog filter value meaning "no filter".
const AllCategories = 0

// Catalog drives the product listing screen: products, categories, the
// popular-products strip, and the client-side category filter.
type Catalog struct {
	view

	catalog  CatalogGateway
	recs     RecommendGateway
	tracking TrackingGateway
	log      zerolog.Logger

	products         []domain.Product
	categories       []domain.Category
	popular          domain.RecommendationSet
	selectedCategory int
}

// NewCatalog creates the catalog controller. recs and tracking may be
// nil; both features degrade silently.
func NewCatalog(catalog CatalogGateway, recs RecommendGateway, tracking TrackingGateway, log zerolog.Logger) *Catalog {
	return &Catalog{
		catalog:          catalog,
		recs:             recs,
		tracking:         tracking,
		log:              log,
		selectedCategory: AllCategories,
	}
}

// Load fetches products, categories, and popular recommendations. The
// three fetches are issued concurrently; none depends on another. Only
// the product fetch is load-bearing: category or recommendation
// failures degrade to empty sections with a warning.
func (c *Catalog) Load(ctx context.Context) error {
	gen := c.begin()

	var (
		wg         sync.WaitGroup
		products   []domain.Product
		productErr error
		categories []domain.Category
		popular    domain.RecommendationSet
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		products, productErr = c.catalog.ListProducts(ctx, nil)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		cats, err := c.catalog.ListCategories(ctx)
		if err != nil {
			c.log.Warn().Err(err).Msg("load categories")
			return
		}
		categories = cats
	}()

	if c.recs != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := c.recs.Popular(ctx, recommendCount)
			if err != nil {
				c.log.Warn().Err(err).Msg("load popular products")
				return
			}
			popular = set
		}()
	}

	wg.Wait()

	c.complete(gen, productErr, func() {
		c.products = products
		c.categories = categories
		c.popular = popular
	})
	return productErr
}

// SetCategoryFilter selects a category id to filter by, or
// AllCategories to show everything. Filtering is purely client-side.
func (c *Catalog) SetCategoryFilter(categoryID int) {
	c.locked(func() { c.selectedCategory = categoryID })
}

// SelectedCategory returns the active filter.
func (c *Catalog) SelectedCategory() int {
	var id int
	c.locked(func() { id = c.selectedCategory })
	return id
}

// Products returns the listing with the category filter applied.
func (c *Catalog) Products() []domain.Product {
	var out []domain.Product
	c.locked(func() {
		if c.selectedCategory == AllCategories {
			out = append(out, c.products...)
			return
		}
		for _, p := range c.products {
			if p.Category != nil && p.Category.ID == c.selectedCategory {
				out = append(out, p)
			}
		}
	})
	return out
}

// Categories returns the category list.
func (c *Catalog) Categories() []domain.Category {
	var out []domain.Category
	c.locked(func() { out = append(out, c.categories...) })
	return out
}

// Popular returns the advisory popular-products strip.
func (c *Catalog) Popular() domain.RecommendationSet {
	var out domain.RecommendationSet
	c.locked(func() { out = c.popular })
	return out
}

// ProductDetail drives one product's detail screen: the product itself,
// its reviews, and "you might also like" recommendations.
type ProductDetail struct {
	view

	catalog  CatalogGateway
	recs     RecommendGateway
	tracking TrackingGateway
	cart     CartGateway
	log      zerolog.Logger

	product domain.Product
	reviews []domain.Review
	related domain.RecommendationSet
}

// NewProductDetail creates the detail controller.
func NewProductDetail(catalog CatalogGateway, recs RecommendGateway, tracking TrackingGateway, cart CartGateway, log zerolog.Logger) *ProductDetail {
	return &ProductDetail{catalog: catalog, recs: recs, tracking: tracking, cart: cart, log: log}
}

// Show selects a product and loads its reviews and recommendations
// concurrently. The view itself never fails to open: review and
// recommendation fetches are best-effort. A view interaction is
// recorded in passing, also best-effort.
func (d *ProductDetail) Show(ctx context.Context, product domain.Product) {
	gen := d.begin()

	var (
		wg      sync.WaitGroup
		reviews []domain.Review
		related domain.RecommendationSet
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		revs, err := d.catalog.ListReviews(ctx, product.ID)
		if err != nil {
			d.log.Warn().Err(err).Int("product_id", product.ID).Msg("load reviews")
			return
		}
		reviews = revs
	}()

	if d.recs != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := d.recs.ForProduct(ctx, product.ID, recommendCount)
			if err != nil {
				d.log.Warn().Err(err).Int("product_id", product.ID).Msg("load recommendations")
				return
			}
			related = set
		}()
	}

	if d.tracking != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.tracking.TrackView(ctx, product.ID); err != nil {
				d.log.Warn().Err(err).Int("product_id", product.ID).Msg("track view")
			}
		}()
	}

	wg.Wait()

	d.complete(gen, nil, func() {
		d.product = product
		d.reviews = reviews
		d.related = related
	})
}

// Product returns the selected product snapshot.
func (d *ProductDetail) Product() domain.Product {
	var p domain.Product
	d.locked(func() { p = d.product })
	return p
}

// Reviews returns the loaded reviews.
func (d *ProductDetail) Reviews() []domain.Review {
	var out []domain.Review
	d.locked(func() { out = append(out, d.reviews...) })
	return out
}

// Related returns the advisory related-products strip.
func (d *ProductDetail) Related() domain.RecommendationSet {
	var out domain.RecommendationSet
	d.locked(func() { out = d.related })
	return out
}

// AddToCart adds the shown product to the cart. The cart screen itself
// refetches on entry, so no cart state is held here.
func (d *ProductDetail) AddToCart(ctx context.Context, quantity int) error {
	if quantity < 1 {
		return validationErrorf("quantity must be at least 1")
	}
	product := d.Product()
	if !product.InStock() {
		return validationErrorf("product is out of stock")
	}
	return d.cart.AddItem(ctx, product.ID, quantity)
}

// ReviewForm is the local review input.
type ReviewForm struct {
	Rating  int    `validate:"min=1,max=5"`
	Comment string `validate:"required"`
}

// SubmitReview posts a review and refetches the review list. An empty
// comment fails locally without a network call.
func (d *ProductDetail) SubmitReview(ctx context.Context, form ReviewForm) error {
	form.Comment = strings.TrimSpace(form.Comment)
	if err := checkForm(form); err != nil {
		return err
	}

	product := d.Product()
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			return d.catalog.AddReview(ctx, product.ID, form.Rating, form.Comment)
		},
		func(ctx context.Context) error {
			reviews, err := d.catalog.ListReviews(ctx, product.ID)
			if err != nil {
				return err
			}
			d.locked(func() { d.reviews = reviews })
			return nil
		},
	)
}
