package domain

// RecommendationPurpose tags where a recommendation set came from.
type RecommendationPurpose string

const (
	RecommendPopular    RecommendationPurpose = "popular"
	RecommendPerProduct RecommendationPurpose = "product"
	RecommendPerUser    RecommendationPurpose = "user"
)

// RecommendationSet is an ordered sequence of product references from
// the recommendation service. It is purely advisory: stock and price in
// these entries are never authoritative.
type RecommendationSet struct {
	Purpose  RecommendationPurpose
	Products []Product
}

// Empty reports whether the set carries no recommendations.
func (r RecommendationSet) Empty() bool {
	return len(r.Products) == 0
}
