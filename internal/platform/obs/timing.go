package obs

import (
	"context"
	"log"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Time logs the duration of a named operation, tagged with the chi request
// ID when one is present. Use with a named error return:
//
//	defer obs.Time(ctx, "rank_safe_spots")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := middleware.GetReqID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
