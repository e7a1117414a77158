package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Result is one ranked search hit: the stored record's full attribute
// bag plus its identifier.
type Result struct {
	ID      int
	Score   float64
	Product Product
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Product.attrs)+1)
	for k, v := range r.Product.attrs {
		out[k] = v
	}

	id, err := json.Marshal(r.ID)
	if err != nil {
		return nil, err
	}
	out["productId"] = id

	return json.Marshal(out)
}

// Search scores every stored record against query and returns all of
// them, best first. Ties on score go to the larger identifier. An
// empty catalog yields an empty slice; a single malformed record fails
// the whole search.
func Search(query string, items []Stored) ([]Result, error) {
	results := make([]Result, 0, len(items))
	for _, it := range items {
		score, err := Score(query, it.Product)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", it.ID, err)
		}
		results = append(results, Result{ID: it.ID, Score: score, Product: it.Product})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID > results[j].ID
	})

	return results, nil
}
