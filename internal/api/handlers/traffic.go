package handlers

import (
	"net/http"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/services"
)

// TrafficHandler exposes the traffic pattern snapshot endpoint.
type TrafficHandler struct {
	Reporter *services.TrafficReporter
}

// Patterns returns the eight-bucket congestion snapshot for the current
// moment. No query parameters: the snapshot is always "now".
func (h *TrafficHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	buckets := h.Reporter.Snapshot()

	out := make([]dto.TrafficBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.TrafficBucketResponse{
			Time:       b.Time,
			Congestion: b.Congestion,
			Accidents:  b.Accidents,
		})
	}

	// The echoed time comes from the reporter's own clock so it always
	// matches the snapshot's jitter center.
	now := h.Reporter.CurrentTime()

	writeJSON(w, r, http.StatusOK, dto.TrafficResponse{
		Success:     true,
		Data:        out,
		Timestamp:   now.UTC(),
		CurrentTime: dto.CurrentTime{Hour: now.Hour(), Minute: now.Minute()},
	})
}
