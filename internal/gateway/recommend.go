package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Recommendations talks to the recommendation service. Results are
// advisory only: stock and price in a recommendation are never
// authoritative, and every caller treats failures as best-effort.
type Recommendations struct {
	client *transport.Client
	prefix string
}

// NewRecommendations creates a gateway that calls the recommendation
// service directly at its own base URL.
func NewRecommendations(client *transport.Client) *Recommendations {
	return &Recommendations{client: client, prefix: "/recommendations"}
}

// NewProxiedRecommendations creates a gateway that reaches the
// recommendation service through the backend's /ml proxy.
func NewProxiedRecommendations(client *transport.Client) *Recommendations {
	return &Recommendations{client: client, prefix: "/ml/recommendations"}
}

// ForProduct fetches up to n products similar to the given one.
func (g *Recommendations) ForProduct(ctx context.Context, productID, n int) (domain.RecommendationSet, error) {
	products, err := g.fetch(ctx, fmt.Sprintf("%s/product/%d", g.prefix, productID), n)
	return domain.RecommendationSet{Purpose: domain.RecommendPerProduct, Products: products}, err
}

// ForUser fetches up to n personalized products for the given user.
func (g *Recommendations) ForUser(ctx context.Context, userID, n int) (domain.RecommendationSet, error) {
	products, err := g.fetch(ctx, fmt.Sprintf("%s/user/%d", g.prefix, userID), n)
	return domain.RecommendationSet{Purpose: domain.RecommendPerUser, Products: products}, err
}

// Popular fetches up to n currently popular products.
func (g *Recommendations) Popular(ctx context.Context, n int) (domain.RecommendationSet, error) {
	products, err := g.fetch(ctx, g.prefix+"/popular", n)
	return domain.RecommendationSet{Purpose: domain.RecommendPopular, Products: products}, err
}

func (g *Recommendations) fetch(ctx context.Context, path string, n int) ([]domain.Product, error) {
	query := url.Values{"n": []string{strconv.Itoa(n)}}
	resp, err := g.client.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	// The service wraps its list as {recommendations: [...], count: n};
	// fall through to the standard normalization for anything else.
	if recs := gjson.GetBytes(body, "recommendations"); usable(recs) {
		if !recs.IsArray() {
			return []domain.Product{}, nil
		}
		return unmarshalArray[domain.Product]([]byte(recs.Raw))
	}
	return normalizeList[domain.Product](body)
}
