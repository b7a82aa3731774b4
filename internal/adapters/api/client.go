package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emiliopalmerini/genex/internal/domain"
)

const (
	searchPath     = "/datasets/search/"
	datasetPath    = "/dataset/"
	expressionPath = "/analyze/expression"
	predictionPath = "/predict/health"

	defaultTimeout = 30 * time.Second
	// maxErrorBody caps how much of a failed response is kept for logs.
	maxErrorBody = 512
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d", e.Method, e.Path, e.StatusCode)
}

// Client talks to the gene-expression backend over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewClient creates a new backend client. A zero timeout falls back to 30s.
func NewClient(baseURL string, timeout time.Duration, logger domain.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend URL not configured")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parsing backend URL: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// SearchDatasets queries the dataset search endpoint. The query is path-escaped
// and otherwise passed through unvalidated.
func (c *Client) SearchDatasets(ctx context.Context, query string) ([]domain.Dataset, error) {
	var datasets []domain.Dataset
	if err := c.do(ctx, http.MethodGet, searchPath+url.PathEscape(query), nil, &datasets); err != nil {
		return nil, fmt.Errorf("searching datasets: %w", err)
	}
	if datasets == nil {
		datasets = []domain.Dataset{}
	}
	return datasets, nil
}

// AnalyzeExpression requests the expression comparison for a gene.
func (c *Client) AnalyzeExpression(ctx context.Context, q domain.AnalysisQuery) (domain.ExpressionResult, error) {
	var result domain.ExpressionResult
	if err := c.do(ctx, http.MethodPost, expressionPath, q, &result); err != nil {
		return domain.ExpressionResult{}, fmt.Errorf("analyzing expression: %w", err)
	}
	return result, nil
}

// PredictHealth requests the health classification for a gene.
func (c *Client) PredictHealth(ctx context.Context, q domain.AnalysisQuery) (domain.PredictionResult, error) {
	var result domain.PredictionResult
	if err := c.do(ctx, http.MethodPost, predictionPath, q, &result); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predicting health: %w", err)
	}
	return result, nil
}

// GetDataset retrieves the extended metadata of one dataset.
func (c *Client) GetDataset(ctx context.Context, id string) (domain.DatasetDetail, error) {
	var detail domain.DatasetDetail
	if err := c.do(ctx, http.MethodGet, datasetPath+url.PathEscape(id), nil, &detail); err != nil {
		return domain.DatasetDetail{}, fmt.Errorf("getting dataset %s: %w", id, err)
	}
	return detail, nil
}

// IsAvailable checks if the backend is reachable.
func (c *Client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug(fmt.Sprintf("%s %s", method, path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
