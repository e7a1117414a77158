package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Deepeshlodhii/product-search-engine/pkg/kit"
)

type Server struct {
	Store   *Store
	Log     *zap.Logger
	Metrics *Metrics
}

const maxProductBody = 1 << 20

type metadataReq struct {
	ProductID *int            `json:"productId"`
	Metadata  json.RawMessage `json:"Metadata"`
}

type metadataResp struct {
	ProductID int             `json:"productId"`
	Metadata  json.RawMessage `json:"Metadata"`
}

type searchResp struct {
	Data []Result `json:"data"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/product", s.createProduct)
		r.Put("/product/meta-data", s.updateMetadata)
		r.Get("/search/product", s.search)
	})

	return r
}

// createProduct accepts any JSON object as a product. Required fields
// are not validated here; a bad record fails later, at scoring time.
func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductBody)
	defer func() { _ = r.Body.Close() }()

	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	id := s.Store.Create(p)

	if s.Metrics != nil {
		s.Metrics.Products.Set(float64(s.Store.Len()))
	}
	if s.Log != nil {
		s.Log.Info("product stored", zap.Int("product_id", id))
	}

	kit.WriteJSON(w, http.StatusOK, map[string]int{"productId": id})
}

func (s *Server) updateMetadata(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMetadataRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.ProductID == nil {
		// Same outcome as a lookup miss: no such product.
		kit.WriteError(w, r, http.StatusNotFound, "product not found", nil)
		return
	}

	if err := s.Store.UpdateMetadata(*req.ProductID, req.Metadata); err != nil {
		if errors.Is(err, ErrNotFound) {
			kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"productId": *req.ProductID})
			return
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, metadataResp{ProductID: *req.ProductID, Metadata: req.Metadata})
}

// search scores the full catalog against the query parameter. A
// missing parameter is scored as the empty string, never rejected.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	start := time.Now()
	results, err := Search(query, s.Store.List())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("search failed", zap.Error(err), zap.String("query", query))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if s.Metrics != nil {
		s.Metrics.Searches.Inc()
		s.Metrics.SearchDuration.Observe(time.Since(start).Seconds())
		s.Metrics.RankedResults.Observe(float64(len(results)))
	}

	kit.WriteJSON(w, http.StatusOK, searchResp{Data: results})
}

func decodeMetadataRequest(w http.ResponseWriter, r *http.Request) (metadataReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)

	var req metadataReq
	if err := dec.Decode(&req); err != nil {
		return metadataReq{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return metadataReq{}, errors.New("extra data after json object")
	}

	return req, nil
}
