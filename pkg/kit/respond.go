package kit

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error shape every endpoint speaks: a
// human-readable detail plus optional structured context.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Extra     any    `json:"extra,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, detail string, extra any) {
	WriteJSON(w, status, ErrorResponse{
		Detail:    detail,
		Extra:     extra,
		RequestID: GetReqID(r.Context()),
	})
}
