package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}
			if counterValue(t, counter) < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		backend    string
		resource   string
		success    bool
		statusCode string
	}{
		{
			name:     "successful API call",
			backend:  "wordpress",
			resource: "posts",
			success:  true,
		},
		{
			name:       "failed API call with status code",
			backend:    "strapi",
			resource:   "pages",
			success:    false,
			statusCode: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.backend, tt.resource, 0.1, tt.success, tt.statusCode)

			status := "success"
			if !tt.success {
				status = "error"
			}
			counter, err := CMSAPIRequestsTotal.GetMetricWithLabelValues(tt.backend, tt.resource, status)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}
			if counterValue(t, counter) < 1 {
				t.Error("expected counter to be incremented")
			}

			if tt.statusCode != "" {
				errCounter, err := CMSAPIErrors.GetMetricWithLabelValues(tt.backend, tt.resource, tt.statusCode)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}
				if counterValue(t, errCounter) < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRecordFallback(t *testing.T) {
	counter := FallbacksReturned.WithLabelValues("wordpress", "fallback-test")
	before := counterValue(t, counter)

	RecordFallback("wordpress", "fallback-test")

	if got := counterValue(t, counter); got != before+1 {
		t.Errorf("fallback counter = %v, want %v", got, before+1)
	}
}

func TestRecordContentSize(t *testing.T) {
	// Histograms have no simple getter; recording must not panic.
	RecordContentSize("wordpress", 2048)
	RecordContentSize("strapi", 0)
}
