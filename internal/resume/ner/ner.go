package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

// LabelPerson is the entity label for people's names
const LabelPerson = "PERSON"

// ErrNLPUnavailable is returned when the entity recognition sidecar cannot be reached
var ErrNLPUnavailable = errors.New("entity recognition unavailable")

// Entity is a labelled span of text
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer finds named entities in text
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// HTTPRecognizer calls an NER sidecar over HTTP
type HTTPRecognizer struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewHTTPRecognizer creates a client for the sidecar at baseURL
func NewHTTPRecognizer(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type entitiesRequest struct {
	Text string `json:"text"`
}

type entitiesResponse struct {
	Entities []Entity `json:"entities"`
}

// Entities posts text to {baseURL}/entities
func (c *HTTPRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	payload, err := json.Marshal(entitiesRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/entities", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNLPUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNLPUnavailable, resp.StatusCode)
	}

	var out entitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}

	c.logger.Debug().Int("entities", len(out.Entities)).Msg("entity recognition completed")
	return out.Entities, nil
}

// Ping checks {baseURL}/health
func (c *HTTPRecognizer) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNLPUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health status %d", ErrNLPUnavailable, resp.StatusCode)
	}
	return nil
}

// Resolve returns a ready recognizer for baseURL, or nil when baseURL is
// empty or the sidecar does not answer its health check.
func Resolve(ctx context.Context, baseURL string, timeout time.Duration, log *logger.Logger) Recognizer {
	if baseURL == "" {
		log.Info().Msg("entity recognition disabled")
		return nil
	}

	rec := NewHTTPRecognizer(baseURL, timeout, log)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rec.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("url", baseURL).Msg("entity recognition sidecar not reachable, continuing without it")
		return nil
	}

	log.Info().Str("url", baseURL).Msg("entity recognition enabled")
	return rec
}
