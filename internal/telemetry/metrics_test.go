package telemetry

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(apiRequests.WithLabelValues("/api/v1/slots/", "200"))

	ObserveAPIRequest("/api/v1/slots/", 200)
	ObserveAPIRequest("/api/v1/slots/", 200)
	ObserveAPIRequest("/api/v1/slots/", 500)
	ObserveAPIRequest("/api/v1/auth/profile", 403)

	assert.Equal(t, before+2, testutil.ToFloat64(apiRequests.WithLabelValues("/api/v1/slots/", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(apiRequests.WithLabelValues("/api/v1/slots/", "500")))
	assert.Equal(t, float64(1), testutil.ToFloat64(apiRequests.WithLabelValues("/api/v1/auth/profile", "403")))
}

func TestObserveAPIRequest_TransportFailure(t *testing.T) {
	// Status 0 is the label for requests that never got a response.
	ObserveAPIRequest("/api/v1/stores/", 0)
	assert.Equal(t, float64(1), testutil.ToFloat64(apiRequests.WithLabelValues("/api/v1/stores/", "0")))
}

func TestStartMetricsServer(t *testing.T) {
	go func() {
		// High port to avoid conflicts with anything local.
		_ = StartMetricsServer(":19990")
	}()

	deadline := time.Now().Add(2 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://localhost:19990/metrics")
		if err == nil {
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			return
		}
		lastErr = err
		time.Sleep(50 * time.Millisecond)
	}
	// Binding can be restricted in some environments; log instead of failing.
	t.Logf("metrics endpoint unreachable: %v", lastErr)
}
