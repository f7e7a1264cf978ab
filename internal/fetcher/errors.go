package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrContentTypeNotSupported is returned when response is not HTML document.
	ErrContentTypeNotSupported = errors.New("response content type not supported")
	// ErrRenderingUnavailable is returned when page requires browser rendering, but no browser is configured.
	ErrRenderingUnavailable = errors.New("page rendering unavailable")
)
