package filmsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Clark-Hu/film-catalog/internal/domain"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "film-catalog/1.0"
	maxResponseBody  = 8 << 20 // 8 MiB
)

var (
	// ErrMissingURL is returned by NewHTTPClient when no endpoint is configured.
	ErrMissingURL = errors.New("filmsapi: url is required")
	// ErrMissingFilms is returned when the payload has no "filmes" collection.
	ErrMissingFilms = errors.New("filmsapi: response has no filmes field")
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("filmsapi: upstream returned %d", e.StatusCode)
}

// Client defines the contract for reading the upstream film catalog.
type Client interface {
	FetchCatalog(ctx context.Context) (*domain.Catalog, error)
}

// Options configures an HTTPClient.
type Options struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	endpoint  *url.URL
	timeout   time.Duration
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPClient constructs a new HTTP-backed films API client.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	raw := strings.TrimSpace(opts.URL)
	if raw == "" {
		return nil, ErrMissingURL
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse films api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("parse films api url: unsupported scheme %q", parsed.Scheme)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPClient{
		endpoint:  parsed,
		timeout:   timeout,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// FetchCatalog retrieves the full catalog. Cancelling ctx aborts the call.
func (c *HTTPClient) FetchCatalog(ctx context.Context) (*domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	reqID := requestID(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get films catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("filmsapi: unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", reqID),
		)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	catalog, err := DecodeCatalog(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	c.logger.Debug("filmsapi: catalog fetched",
		slog.Int("films", len(catalog.Films)),
		slog.Duration("elapsed", time.Since(start)),
		slog.String("request_id", reqID),
	)
	return catalog, nil
}

type catalogPayload struct {
	Films *[]domain.RawFilm `json:"filmes"`
}

// DecodeCatalog parses an upstream catalog document.
func DecodeCatalog(r io.Reader) (*domain.Catalog, error) {
	var payload catalogPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode films catalog: %w", err)
	}
	if payload.Films == nil {
		return nil, ErrMissingFilms
	}
	return &domain.Catalog{Films: *payload.Films}, nil
}

// requestID forwards the inbound request id when there is one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
