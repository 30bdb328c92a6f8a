package services

import (
	"math/rand"
	"testing"
)

func TestTrafficSnapshotShape(t *testing.T) {
	reporter := NewTrafficReporter(fixedClock(12, 0), rand.New(rand.NewSource(1)))

	buckets := reporter.Snapshot()

	if len(buckets) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"6 AM", "8 AM", "10 AM", "12 PM", "2 PM", "4 PM", "6 PM", "8 PM"}
	for i, bucket := range buckets {
		if bucket.Time != wantLabels[i] {
			t.Fatalf("bucket %d label = %q, want %q", i, bucket.Time, wantLabels[i])
		}
		if bucket.Congestion < 0 || bucket.Congestion > 100 {
			t.Fatalf("bucket %q congestion out of range: %d", bucket.Time, bucket.Congestion)
		}
		if bucket.Accidents < 0 || bucket.Accidents > 10 {
			t.Fatalf("bucket %q accidents out of range: %d", bucket.Time, bucket.Accidents)
		}
	}
}

func TestTrafficPeaksExceedOffPeak(t *testing.T) {
	reporter := NewTrafficReporter(fixedClock(3, 0), rand.New(rand.NewSource(99)))

	buckets := reporter.Snapshot()

	// 8 AM (morning peak) and 6 PM (evening peak) against 6 AM and 8 PM.
	morningPeak := buckets[1].Congestion
	eveningPeak := buckets[6].Congestion
	earlyQuiet := buckets[0].Congestion
	lateQuiet := buckets[7].Congestion

	if morningPeak <= earlyQuiet {
		t.Fatalf("morning peak %d should exceed early morning %d", morningPeak, earlyQuiet)
	}
	if eveningPeak <= lateQuiet {
		t.Fatalf("evening peak %d should exceed late evening %d", eveningPeak, lateQuiet)
	}
}
