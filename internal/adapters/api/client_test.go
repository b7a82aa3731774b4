package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/genex/internal/adapters/logger"
	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/mockapi"
)

func newClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(url, time.Second, logger.NopLogger{})
	require.NoError(t, err)
	return c
}

func TestNewClient_RejectsMissingURL(t *testing.T) {
	_, err := NewClient("", time.Second, logger.NopLogger{})
	assert.Error(t, err)
}

func TestClientAgainstMockBackend(t *testing.T) {
	srv := httptest.NewServer(mockapi.NewServer(0, mockapi.NewGenerator(7)).Handler())
	defer srv.Close()

	c := newClient(t, srv.URL+"/")
	ctx := context.Background()
	q := domain.AnalysisQuery{GeneID: "TP53", DatasetID: "GSE123456"}

	datasets, err := c.SearchDatasets(ctx, "cancer")
	require.NoError(t, err)
	assert.Len(t, datasets, 2)

	expr, err := c.AnalyzeExpression(ctx, q)
	require.NoError(t, err)
	assert.NotEmpty(t, expr.ExpressionData.Healthy)

	pred, err := c.PredictHealth(ctx, q)
	require.NoError(t, err)
	assert.NotEmpty(t, pred.Prediction)

	detail, err := c.GetDataset(ctx, "GSE123456")
	require.NoError(t, err)
	assert.Equal(t, "GPL570", detail.Platform)

	assert.True(t, c.IsAvailable(ctx))
}

func TestSearchDatasets_EscapesQueryIntoPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[{"id":"GSE1","title":"Study A","organism":"human","samples":20}]`))
	}))
	defer srv.Close()

	got, err := newClient(t, srv.URL).SearchDatasets(context.Background(), "breast cancer/2")
	require.NoError(t, err)

	assert.Equal(t, "/datasets/search/breast%20cancer%2F2", gotPath)
	assert.Equal(t, []domain.Dataset{{ID: "GSE1", Title: "Study A", Organism: "human", Samples: 20}}, got)
}

func TestAnalysisRequestBody(t *testing.T) {
	var got domain.AnalysisQuery
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"prediction":"healthy","confidence":55.5}`))
	}))
	defer srv.Close()

	want := domain.AnalysisQuery{GeneID: "BRCA1", DatasetID: "GSE789012"}
	pred, err := newClient(t, srv.URL).PredictHealth(context.Background(), want)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, domain.PredictionResult{Prediction: domain.StatusHealthy, Confidence: 55.5}, pred)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "validation error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "unknown prediction label",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"prediction":"maybe","confidence":1}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newClient(t, srv.URL).PredictHealth(context.Background(), domain.AnalysisQuery{GeneID: "X", DatasetID: "Y"})
			require.Error(t, err)

			var statusErr *StatusError
			if tt.wantStatus != 0 {
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
			} else {
				assert.False(t, errors.As(err, &statusErr))
			}
		})
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(t, url)
	_, err := c.SearchDatasets(context.Background(), "cancer")
	assert.Error(t, err)
	assert.False(t, c.IsAvailable(context.Background()))
}
