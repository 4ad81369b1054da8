package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"update-vendor-files/internal/ports"
	"update-vendor-files/internal/shared"
)

const defaultHTTPTimeout = 60 * time.Second
const defaultUserAgent = "update-vendor-files"

type HTTPFetcherConfig struct {
	TimeoutSec int
	User       string
	APIKey     string
	UserAgent  string
}

// HTTPFetcherAdapter performs single-shot GET requests. Failed requests are
// reported, never retried.
type HTTPFetcherAdapter struct {
	client    *http.Client
	user      string
	apiKey    string
	userAgent string
}

func NewHTTPFetcherAdapter(cfg HTTPFetcherConfig) HTTPFetcherAdapter {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return HTTPFetcherAdapter{
		client:    &http.Client{Timeout: timeout},
		user:      strings.TrimSpace(cfg.User),
		apiKey:    strings.TrimSpace(cfg.APIKey),
		userAgent: userAgent,
	}
}

func (a HTTPFetcherAdapter) FetchText(ctx context.Context, url string) (string, error) {
	body, err := a.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (a HTTPFetcherAdapter) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return a.get(ctx, url)
}

func (a HTTPFetcherAdapter) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create request").
			WithCause(err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	if a.apiKey != "" {
		authUser := a.user
		if authUser == "" {
			authUser = "api"
		}
		req.SetBasicAuth(authUser, a.apiKey)
	}

	started := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeUnavailable).
				WithMsg("request canceled").
				WithCause(ctx.Err())
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to fetch " + url).
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read response body").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(started)).
		Msg("fetched")
	return body, nil
}

var _ ports.PackFetcherPort = HTTPFetcherAdapter{}
