package catalog

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeProduct(t *testing.T, raw string) Product {
	t.Helper()

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.Create(decodeProduct(t, `{"title":"Keyboard","description":"Mechanical","mrp":5000,"price":4500}`))
	second := s.Create(decodeProduct(t, `{"title":"Mouse","description":"Wireless","mrp":2000,"price":1800}`))

	require.Equal(t, 101, first)
	require.Equal(t, 102, second)
	require.Equal(t, 2, s.Len())
}

func TestCreateConcurrentIDsAreUnique(t *testing.T) {
	const (
		goroutines = 40
		perG       = 25
	)

	s := NewStore()
	p := decodeProduct(t, `{"title":"Pen","description":"Ballpoint","mrp":20,"price":15}`)

	ids := make(chan int, goroutines*perG)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				ids <- s.Create(p)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]struct{}, goroutines*perG)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}

	require.Len(t, seen, goroutines*perG)
	require.Equal(t, goroutines*perG, s.Len())
}

func TestUpdateMetadataReplacesWholesale(t *testing.T) {
	s := NewStore()
	id := s.Create(decodeProduct(t, `{"title":"Lamp","description":"Desk lamp","mrp":900,"price":700}`))

	require.NoError(t, s.UpdateMetadata(id, json.RawMessage(`{"color":"red","weight":2}`)))
	require.NoError(t, s.UpdateMetadata(id, json.RawMessage(`{"color":"blue"}`)))

	var got Product
	for _, it := range s.List() {
		if it.ID == id {
			got = it.Product
		}
	}
	require.JSONEq(t, `{"color":"blue"}`, string(got.Metadata))
}

func TestUpdateMetadataDoesNotMutateSnapshots(t *testing.T) {
	s := NewStore()
	id := s.Create(decodeProduct(t, `{"title":"Lamp","description":"Desk lamp","mrp":900,"price":700}`))

	before := s.List()
	require.NoError(t, s.UpdateMetadata(id, json.RawMessage(`{"color":"red"}`)))

	require.Nil(t, before[0].Product.Metadata)

	raw, err := json.Marshal(before[0].Product)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "Metadata")
}

func TestUpdateMetadataUnknownID(t *testing.T) {
	s := NewStore()
	s.Create(decodeProduct(t, `{"title":"Lamp","description":"Desk lamp","mrp":900,"price":700}`))

	err := s.UpdateMetadata(999, json.RawMessage(`{"color":"red"}`))
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 1, s.Len())
}
