package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/brokkr/pkg/schema"
)

// Server holds the API server state
type Server struct {
	registry *schema.Registry
	config   ServerConfig
	metrics  *Metrics
}

// NewServer creates a new API server
func NewServer(registry *schema.Registry, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		registry: registry,
		config:   config,
		metrics:  metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleListFormats returns every registered format with its field layout.
func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	infos := make([]FormatInfo, 0)
	for _, name := range s.registry.Names() {
		infos = append(infos, s.formatInfo(name))
	}
	sendSuccess(w, infos)
}

func (s *Server) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := s.registry.Format(name); !ok {
		sendError(w, "Unknown format: "+name, http.StatusNotFound)
		return
	}
	sendSuccess(w, s.formatInfo(name))
}

func (s *Server) formatInfo(name string) FormatInfo {
	f, _ := s.registry.Format(name)
	fields, _ := s.registry.Fields(name)
	rendered := make([]string, len(fields))
	for i, field := range fields {
		rendered[i] = field.String()
	}
	return FormatInfo{Name: name, Fields: rendered, Arity: f.Arity()}
}

// handlePack encodes a value list against a named format.
func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")

	f, ok := s.registry.Format(name)
	if !ok {
		sendError(w, "Unknown format: "+name, http.StatusNotFound)
		return
	}
	fields, _ := s.registry.Fields(name)

	var req PackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	values, err := schema.Coerce(fields, req.Values)
	if err != nil {
		s.metrics.RecordCodecOperation("pack", name, false, 0, time.Since(start))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	packed, err := f.Pack(values...)
	if err != nil {
		s.metrics.RecordCodecOperation("pack", name, false, 0, time.Since(start))
		sendCodecError(w, err)
		return
	}

	s.metrics.RecordCodecOperation("pack", name, true, len(packed), time.Since(start))
	sendSuccess(w, PackResponse{
		Data: base64.StdEncoding.EncodeToString(packed),
		Size: len(packed),
	})
}

// handleUnpack decodes a byte string against a named format.
func (s *Server) handleUnpack(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")

	f, ok := s.registry.Format(name)
	if !ok {
		sendError(w, "Unknown format: "+name, http.StatusNotFound)
		return
	}

	var req UnpackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		sendError(w, "Invalid base64 data: "+err.Error(), http.StatusBadRequest)
		return
	}

	var values []any
	consumed := len(data)
	if req.Prefix {
		values, consumed, err = f.UnpackPrefix(data)
	} else {
		values, err = f.Unpack(data)
	}
	if err != nil {
		s.metrics.RecordCodecOperation("unpack", name, false, 0, time.Since(start))
		sendCodecError(w, err)
		return
	}

	s.metrics.RecordCodecOperation("unpack", name, true, consumed, time.Since(start))
	sendSuccess(w, UnpackResponse{
		Values:   values,
		Consumed: consumed,
		Total:    len(data),
	})
}
