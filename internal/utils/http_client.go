package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers configure it fluently and can
// extend it with application helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool and settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
