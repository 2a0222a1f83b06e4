//go:build staging

package staging

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestMetricsExposed(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/metrics", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "slotsim_http_requests_total") {
		t.Error("Expected slotsim HTTP metrics in /metrics output")
	}
}

func TestProgress(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/progress", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var progress struct {
		Done  int64 `json:"done"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &progress); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if progress.Done > progress.Total {
		t.Errorf("Done (%d) exceeds total (%d)", progress.Done, progress.Total)
	}
}
