package reviews

import (
	"github.com/tidwall/gjson"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

// Decode parses a review payload: a JSON array of objects carrying sku or
// baseSku plus rating and numReviews. Rating values may be numbers or
// strings. ok is false when body is not a JSON array, which callers treat as
// "no data".
//
// Only string-typed sku/baseSku values take part in matching; array items
// that are not objects are skipped.
func Decode(body []byte) (entries []model.ReviewEntry, ok bool) {
	if !gjson.ValidBytes(body) {
		return nil, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, false
	}
	entries = make([]model.ReviewEntry, 0, len(root.Array()))
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		var e model.ReviewEntry
		if v := item.Get("sku"); v.Type == gjson.String {
			e.SKU = v.Str
		}
		if v := item.Get("baseSku"); v.Type == gjson.String {
			e.BaseSKU = v.Str
		}
		if v := item.Get("rating"); v.Exists() {
			e.HasRating = true
			e.Rating = v.String()
		}
		if v := item.Get("numReviews"); v.Exists() {
			e.HasNumReviews = true
			e.NumReviews = v.String()
		}
		entries = append(entries, e)
		return true
	})
	return entries, true
}
