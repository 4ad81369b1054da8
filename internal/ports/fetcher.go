package ports

import "context"

// PackFetcherPort retrieves the index page and pack archives.
type PackFetcherPort interface {
	FetchText(ctx context.Context, url string) (string, error)
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
