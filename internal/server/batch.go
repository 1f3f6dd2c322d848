package server

import (
	"fmt"
	"net/http"

	"github.com/npillmayer/sinhala/internal/metrics"
	"golang.org/x/sync/errgroup"
)

type batchRequest struct {
	Direction string   `json:"direction"`
	Items     []string `json:"items"`
}

type batchResponse struct {
	Direction string   `json:"direction"`
	Items     []string `json:"items"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Items) > s.conf.BatchLimit {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("batch holds %d items, limit is %d", len(req.Items), s.conf.BatchLimit))
		return
	}
	fn, ok := s.converter(req.Direction)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown direction %q", req.Direction))
		return
	}
	metrics.BatchSize.Observe(float64(len(req.Items)))

	out := make([]string, len(req.Items))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.conf.BatchWorkers)
	for i, item := range req.Items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = convert(req.Direction, fn, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Infof("batch aborted: %v", err)
		writeError(w, http.StatusServiceUnavailable, "batch aborted")
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Direction: req.Direction, Items: out})
}
