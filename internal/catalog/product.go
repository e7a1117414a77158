package catalog

import "encoding/json"

// Wire keys for the typed product fields. Everything else a caller
// sends rides along in the attribute bag untouched.
const (
	keyTitle       = "title"
	keyDescription = "description"
	keyMRP         = "mrp"
	keyPrice       = "price"
	keyRating      = "rating"
	keyStock       = "stock"
	keyMetadata    = "Metadata"
)

// Product is one catalog entry. Callers submit an open JSON object;
// the known fields are parsed out for scoring and the full bag is kept
// so unknown fields round-trip into search results verbatim.
//
// Decoding never fails on a missing or wrongly typed field: the field
// names are recorded and the record is rejected later, when the ranker
// actually needs them.
type Product struct {
	Title       string
	Description string
	MRP         float64
	Price       float64
	Rating      float64
	Stock       int64
	Metadata    json.RawMessage

	attrs   map[string]json.RawMessage
	missing []string
}

func (p *Product) UnmarshalJSON(b []byte) error {
	var bag map[string]json.RawMessage
	if err := json.Unmarshal(b, &bag); err != nil {
		return err
	}
	if bag == nil {
		bag = map[string]json.RawMessage{}
	}

	out := Product{attrs: bag}

	for _, f := range []struct {
		key string
		dst any
	}{
		{keyTitle, &out.Title},
		{keyDescription, &out.Description},
		{keyMRP, &out.MRP},
		{keyPrice, &out.Price},
	} {
		raw, ok := bag[f.key]
		if !ok || json.Unmarshal(raw, f.dst) != nil {
			out.missing = append(out.missing, f.key)
		}
	}

	// Optional signals default to zero when absent or unusable.
	if raw, ok := bag[keyRating]; ok {
		_ = json.Unmarshal(raw, &out.Rating)
	}
	if raw, ok := bag[keyStock]; ok {
		_ = json.Unmarshal(raw, &out.Stock)
	}
	if raw, ok := bag[keyMetadata]; ok {
		out.Metadata = raw
	}

	*p = out
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.attrs)
}

// WithMetadata returns a copy of the record with its metadata replaced
// wholesale. The attribute bag is copied so snapshots handed out by
// List are never mutated behind a reader's back.
func (p Product) WithMetadata(meta json.RawMessage) Product {
	attrs := make(map[string]json.RawMessage, len(p.attrs)+1)
	for k, v := range p.attrs {
		attrs[k] = v
	}
	attrs[keyMetadata] = meta

	p.Metadata = meta
	p.attrs = attrs
	return p
}
