// Package gateway maps logical storefront operations onto single HTTP
// calls. Gateways hold no state and apply no business logic; they only
// translate typed arguments into verb+path+payload and decode the raw
// response.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// DecodeList reads a list-returning response and applies the one
// normalization rule used uniformly across every listing call: if the
// body has a usable "results" field, the list is that field; otherwise,
// if the body itself is an array, the list is the body; any other shape
// normalizes to an empty sequence. The empty fallback is deliberate: it
// absorbs both paginated and non-paginated backend configurations
// without surfacing a decode error for shape alone.
func DecodeList[T any](resp *http.Response) ([]T, error) {
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	return normalizeList[T](body)
}

func normalizeList[T any](body []byte) ([]T, error) {
	doc := gjson.ParseBytes(body)
	if results := doc.Get("results"); usable(results) {
		if !results.IsArray() {
			return []T{}, nil
		}
		return unmarshalArray[T]([]byte(results.Raw))
	}
	if doc.IsArray() {
		return unmarshalArray[T](body)
	}
	return []T{}, nil
}

// usable mirrors the truthiness test the rule was defined with: a
// results field counts only when present and non-falsy.
func usable(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return true
	}
}

func unmarshalArray[T any](raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list items: %w", err)
	}
	return items, nil
}

// decodeOne decodes a single-object response.
func decodeOne[T any](resp *http.Response) (T, error) {
	var out T
	if err := transport.DecodeResponse(resp, &out); err != nil {
		return out, err
	}
	return out, nil
}

// discard drains a response whose body the caller does not need, still
// surfacing error statuses.
func discard(resp *http.Response) error {
	return transport.DecodeResponse(resp, nil)
}
