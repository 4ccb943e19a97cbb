package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Tracking records product interactions. All calls are best-effort:
// callers never block user flows on them, and a backend without the
// tracking endpoints (404) is not an error.
type Tracking struct {
	client    *transport.Client
	sessionID string
}

// NewTracking creates the tracking gateway with a fresh per-process
// session identifier.
func NewTracking(client *transport.Client) *Tracking {
	return &Tracking{client: client, sessionID: uuid.NewString()}
}

// SessionID exposes the identifier attached to every interaction.
func (g *Tracking) SessionID() string {
	return g.sessionID
}

// TrackView records that a product was viewed.
func (g *Tracking) TrackView(ctx context.Context, productID int) error {
	resp, err := g.client.Post(ctx, fmt.Sprintf("/products/%d/track_view/", productID), map[string]string{
		"session_id": g.sessionID,
	})
	if err != nil {
		return err
	}
	if err := discard(resp); err != nil {
		var httpErr *transport.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			// Tracking endpoints are optional backend features.
			return nil
		}
		return err
	}
	return nil
}
