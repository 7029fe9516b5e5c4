package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// HuggingFace calls a hosted sentiment model over HTTP. The response is a
// prediction list whose first element carries a label; any label
// containing "positive" (case-insensitive) maps to positive sentiment.
type HuggingFace struct {
	client *http.Client
	url    string
	apiKey string
	tracer trace.Tracer
}

func NewHuggingFace(tracer trace.Tracer, url, apiKey string) *HuggingFace {
	return &HuggingFace{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
		apiKey: apiKey,
		tracer: tracer,
	}
}

func (c *HuggingFace) Classify(ctx context.Context, text string) (bool, error) {
	_, span := c.tracer.Start(ctx, "huggingface.classify")
	defer span.End()

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("classifier error %d: %s", resp.StatusCode, string(body))
	}

	var predictions []struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		return false, fmt.Errorf("parse predictions: %w", err)
	}
	if len(predictions) == 0 || predictions[0].Label == "" {
		return false, fmt.Errorf("prediction response carries no label")
	}

	return strings.Contains(strings.ToLower(predictions[0].Label), "positive"), nil
}
