package services

import (
	"math/rand"
	"time"
)

// TrafficBucket is congestion and accident data for one fixed time-of-day
// slot.
type TrafficBucket struct {
	Time       string
	Congestion int
	Accidents  int
}

var trafficSlots = []string{"6 AM", "8 AM", "10 AM", "12 PM", "2 PM", "4 PM", "6 PM", "8 PM"}

// TrafficReporter synthesizes a city traffic snapshot for the current
// moment. The shape follows typical commuter patterns: morning and evening
// peaks, a midday plateau, quiet edges. Buckets near the current hour get
// extra jitter so repeated calls look live.
type TrafficReporter struct {
	now Clock
	rng *rand.Rand
}

// NewTrafficReporter returns a reporter. A nil clock defaults to time.Now;
// a nil rng falls back to the shared math/rand source.
func NewTrafficReporter(now Clock, rng *rand.Rand) *TrafficReporter {
	s := NewSynthesizer(now)
	return &TrafficReporter{now: s.now, rng: rng}
}

// CurrentTime reports the instant the reporter considers "now". Callers
// echoing a timestamp alongside a snapshot must use this so the reported
// time agrees with the jitter center.
func (t *TrafficReporter) CurrentTime() time.Time {
	return t.now()
}

func (t *TrafficReporter) intn(n int) int {
	if t.rng != nil {
		return t.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Snapshot produces the eight-bucket traffic pattern for "now". Values are
// clamped last, after every additive term.
func (t *TrafficReporter) Snapshot() []TrafficBucket {
	currentHour := t.now().Hour()

	buckets := make([]TrafficBucket, 0, len(trafficSlots))
	for i, label := range trafficSlots {
		hour := i*2 + 6

		var congestion, accidents int
		switch {
		case hour >= 7 && hour <= 9:
			congestion = 80 + t.intn(15)
			accidents = 4 + t.intn(3)
		case hour >= 17 && hour <= 19:
			congestion = 85 + t.intn(10)
			accidents = 5 + t.intn(3)
		case hour >= 10 && hour <= 16:
			congestion = 45 + t.intn(20)
			accidents = 1 + t.intn(3)
		default:
			congestion = 20 + t.intn(25)
			accidents = t.intn(2)
		}

		// The current hour (and its neighbors) gets extra variation.
		if diff := abs(currentHour - hour); diff <= 1 {
			congestion += t.intn(10) - 5
			accidents += t.intn(2) - 1
		}

		buckets = append(buckets, TrafficBucket{
			Time:       label,
			Congestion: clampInt(congestion, 0, 100),
			Accidents:  clampInt(accidents, 0, 10),
		})
	}

	return buckets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
