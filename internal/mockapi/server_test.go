package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/genex/internal/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(0, NewGenerator(42)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchReturnsCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/datasets/search/cancer")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Dataset
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, catalog, got)
}

func TestDatasetDetail(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"known dataset", "GSE123456", http.StatusOK},
		{"unknown dataset", "GSE000000", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/dataset/" + tt.id)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestExpressionStatisticsMatchSamples(t *testing.T) {
	srv := newTestServer(t)

	body := `{"gene_id":"TP53","dataset_id":"GSE123456"}`
	resp, err := http.Post(srv.URL+"/analyze/expression", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.ExpressionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got.ExpressionData.Healthy, samplesPerGroup)
	require.Len(t, got.ExpressionData.Diseased, samplesPerGroup)
	assert.InDelta(t, mean(got.ExpressionData.Healthy), got.Statistics.HealthyMean, 1e-9)
	assert.InDelta(t, mean(got.ExpressionData.Diseased), got.Statistics.DiseasedMean, 1e-9)
	assert.InDelta(t, got.Statistics.DiseasedMean/got.Statistics.HealthyMean, got.Statistics.FoldChange, 1e-9)
}

func TestPredictionShape(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 10; i++ {
		body := bytes.NewBufferString(`{"gene_id":"BRCA1","dataset_id":"GSE789012"}`)
		resp, err := http.Post(srv.URL+"/predict/health", "application/json", body)
		require.NoError(t, err)

		var got domain.PredictionResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()

		assert.GreaterOrEqual(t, got.Confidence, 0.0)
		assert.LessOrEqual(t, got.Confidence, 100.0)
		assert.Contains(t, []domain.HealthStatus{domain.StatusHealthy, domain.StatusDiseased}, got.Prediction)
	}
}

func TestAnalysisRejectsIncompleteBody(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/analyze/expression", "/predict/health"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(`{"gene_id":"TP53"}`))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestMetricsEndpointCountsRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/datasets/search/lung")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `genex_mockapi_requests_total{code="200",route="/datasets/search/{query}"} 1`)
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
