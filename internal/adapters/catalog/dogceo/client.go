package dogceo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dog-viewer/internal/domain/dogs"
	"dog-viewer/internal/platform/httpclient"
)

const (
	DefaultBaseURL = "https://dog.ceo/api"

	listBreedsPath  = "/breeds/list/all"
	randomImagePath = "/breed/%s/images/random"
)

var (
	ErrDogCEOInvalidResponse = errors.New("dog.ceo invalid response")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implementa dogs.Catalog contra https://dog.ceo/api.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewWithHTTPClient usa un httpclient ya armado (tests, transports custom).
func NewWithHTTPClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

// envelope es la forma de todas las respuestas de dog.ceo:
// {"message": ..., "status": "success"}
type envelope struct {
	Message json.RawMessage `json:"message"`
	Status  string          `json:"status"`
}

// ListBreeds devuelve las razas (keys de "message") en el orden del documento.
// Las sub-razas se ignoran.
func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	var env envelope
	if err := c.get(ctx, listBreedsPath, &env); err != nil {
		return nil, err
	}
	names, err := orderedKeys(env.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDogCEOInvalidResponse, err)
	}
	return names, nil
}

// RandomImage devuelve la URL de una imagen al azar de breed.
func (c *Client) RandomImage(ctx context.Context, breed string) (string, error) {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf(randomImagePath, url.PathEscape(breed)), &env); err != nil {
		return "", err
	}

	var image string
	if err := json.Unmarshal(env.Message, &image); err != nil {
		return "", fmt.Errorf("%w: message is not a string: %v", ErrDogCEOInvalidResponse, err)
	}
	return image, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	err := c.http.GetJSON(ctx, path, out)
	if err == nil {
		return nil
	}
	if httpclient.IsHTTPError(err) {
		return fmt.Errorf("%w: %w", dogs.ErrUpstreamStatus, err)
	}
	return err
}

// orderedKeys lee un objeto JSON preservando el orden de sus keys.
// Keys repetidas cuentan una vez. null o ausente es error: solo {} es vacío.
func orderedKeys(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errors.New("message is missing or null")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	out := make([]string, 0)
	seen := map[string]struct{}{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", tok)
		}

		// valor (sub-razas) descartado
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}
