package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchEmptyCatalog(t *testing.T) {
	results, err := Search("anything", nil)
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Empty(t, results)
}

func TestSearchOrdersByScoreDescending(t *testing.T) {
	// Identical text, differing ratings: order is decided by rating
	// alone (6 points per star).
	items := []Stored{
		{ID: 101, Product: decodeProduct(t, `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250,"rating":1,"stock":9}`)},
		{ID: 102, Product: decodeProduct(t, `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250,"rating":5,"stock":9}`)},
		{ID: 103, Product: decodeProduct(t, `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250,"rating":3,"stock":9}`)},
	}

	results, err := Search("mug", items)
	require.NoError(t, err)

	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []int{102, 103, 101}, ids)

	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchTieBreaksOnLargerID(t *testing.T) {
	p := `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250,"rating":2,"stock":9}`
	items := []Stored{
		{ID: 101, Product: decodeProduct(t, p)},
		{ID: 103, Product: decodeProduct(t, p)},
		{ID: 102, Product: decodeProduct(t, p)},
	}

	results, err := Search("mug", items)
	require.NoError(t, err)

	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []int{103, 102, 101}, ids)
}

func TestSearchMalformedRecordFailsWholeRequest(t *testing.T) {
	items := []Stored{
		{ID: 101, Product: decodeProduct(t, `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250}`)},
		{ID: 102, Product: decodeProduct(t, `{"title":"Broken"}`)},
	}

	_, err := Search("mug", items)
	require.ErrorIs(t, err, ErrMalformedProduct)
	require.ErrorContains(t, err, "product 102")
}

func TestResultMarshalEchoesAllAttributes(t *testing.T) {
	p := decodeProduct(t, `{"title":"Mug","description":"Ceramic mug","mrp":300,"price":250,"brand":"Acme","tags":["kitchen","gift"]}`)

	raw, err := json.Marshal(Result{ID: 101, Score: 42, Product: p})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Equal(t, float64(101), got["productId"])
	require.Equal(t, "Mug", got["title"])
	require.Equal(t, "Acme", got["brand"])
	require.Equal(t, []any{"kitchen", "gift"}, got["tags"])
	require.NotContains(t, got, "score")
}
