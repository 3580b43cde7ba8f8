package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"engrave-studio/internal/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestClientGenerate(t *testing.T) {
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(generateResponse{Image: pngBase64(t, 8, 6)})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	opts := design.Options{Material: "Slate", DesignType: "Coaster", Prompt: "a fern"}

	img, err := c.Generate(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	assert.NotEmpty(t, gotReq.RequestID)
	assert.Equal(t, BuildPrompt(opts), gotReq.Prompt)
	assert.Empty(t, gotReq.Image, "no reference image was provided")
}

func TestClientGenerateForwardsReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Image)

		json.NewEncoder(w).Encode(generateResponse{Image: pngBase64(t, 4, 4)})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	reference := image.NewRGBA(image.Rect(0, 0, 2, 2))

	_, err := c.Generate(context.Background(), design.Options{}, reference)
	require.NoError(t, err)
}

func TestClientGenerateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(generateResponse{Error: "prompt rejected"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate(context.Background(), design.Options{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt rejected")
}

func TestClientGenerateBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Image: "not base64!!"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate(context.Background(), design.Options{}, nil)
	assert.Error(t, err)
}

func TestClientGenerateContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "")
	_, err := c.Generate(ctx, design.Options{}, nil)
	assert.Error(t, err)
}
