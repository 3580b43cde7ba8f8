// Package gen calls the external generative-image service. The editor does
// not depend on it; it only consumes the resulting image through the
// Generator interface.
package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/google/uuid"

	"engrave-studio/internal/design"
)

// Generator produces an engraving-ready reference image for a design.
type Generator interface {
	Generate(ctx context.Context, opts design.Options, reference image.Image) (image.Image, error)
}

// Client is an HTTP Generator.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the generative-image service.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

var _ Generator = (*Client)(nil)

type generateRequest struct {
	RequestID string `json:"request_id"`
	Prompt    string `json:"prompt"`
	Image     string `json:"image,omitempty"` // base64 PNG reference
}

type generateResponse struct {
	Image string `json:"image"` // base64 PNG result
	Error string `json:"error,omitempty"`
}

// Generate sends one request and decodes the returned image. The optional
// reference image is forwarded as a base64 PNG for image-to-image guidance.
func (c *Client) Generate(ctx context.Context, opts design.Options, reference image.Image) (image.Image, error) {
	reqBody := generateRequest{
		RequestID: uuid.NewString(),
		Prompt:    BuildPrompt(opts),
	}

	if reference != nil {
		encoded, err := encodePNGBase64(reference)
		if err != nil {
			return nil, fmt.Errorf("failed to encode reference image: %w", err)
		}
		reqBody.Image = encoded
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if body.Error != "" {
			return nil, fmt.Errorf("generation failed: %s", body.Error)
		}
		return nil, fmt.Errorf("generation failed: status %d", resp.StatusCode)
	}

	data, err := base64.StdEncoding.DecodeString(body.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode result image: %w", err)
	}
	return design.DecodeUpload(data)
}

func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
