package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesAllSeries(t *testing.T) {
	IncLLMRequest()
	IncLLMFailure()
	IncJobImport()
	IncJobImportBlocked()
	ObserveLLMDurationMs(1234)

	out := Render()
	for _, name := range []string{
		"llm_requests_total",
		"llm_failures_total",
		"job_imports_total",
		"job_imports_blocked_total",
		"llm_request_duration_ms_bucket",
		"llm_request_duration_ms_sum",
		"llm_request_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("render missing series %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, `le="+Inf"`) {
		t.Fatal("render missing +Inf bucket")
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("expected sum 555, got %v", snap.sum)
	}
}
