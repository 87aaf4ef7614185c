package core

import (
	"errors"
	"fmt"
)

// ErrStaleResponse reports a response superseded by a newer request for the
// same source. It is not a real failure: callers discard it and keep the
// state they already have.
var ErrStaleResponse = errors.New("stale response discarded")

// ErrPDFUnavailable is matched by every PDFUnavailableError.
var ErrPDFUnavailable = errors.New("pdf unavailable")

// ErrReelUnset is returned when the reel link is requested but not configured.
var ErrReelUnset = errors.New("reel url not configured")

// ReelUnsetNotice is the message shown to visitors in place of the reel link.
const ReelUnsetNotice = "Add ReelURL in SiteSettings to enable this link."

// NetworkError represents a transport failure or a non-success HTTP status.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network error for %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is reserved for malformed delimited text. The decoder degrades
// gracefully instead of returning it; it exists so callers can name the class.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error on line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PDFUnavailableError reports that text could not be extracted from a document:
// retrieval was blocked, parsing failed, or the format is unsupported.
type PDFUnavailableError struct {
	URL string
	Err error
}

func (e *PDFUnavailableError) Error() string {
	return fmt.Sprintf("pdf unavailable for %s: %v", e.URL, e.Err)
}

func (e *PDFUnavailableError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPDFUnavailable) match any PDFUnavailableError.
func (e *PDFUnavailableError) Is(target error) bool {
	return target == ErrPDFUnavailable
}
