// internal/artifact/publisher.go
//
// Cerney Designs – artifact publisher.
//
// Context
//   Uploads a rendered PDF to object storage and computes the public URL the
//   mirror row records.  Publishing is best-effort: callers treat any error
//   here as a non-fatal stage failure.  The publisher therefore validates
//   its input strictly (empty payloads, oversize payloads, hostile
//   filenames) but never panics.
//
//   The concrete transport is hidden behind the narrow Uploader interface so
//   tests can swap a fake without touching AWS.
//
//------------------------------------------------------------------------------

package artifact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxPayload caps uploads at 10 MiB.  A design-brief PDF measured in
// megabytes means something upstream misbehaved.
const maxPayload = 10 << 20

// maxKeyLen bounds the sanitized filename component of a storage key.
const maxKeyLen = 100

const defaultTimeout = 10 * time.Second

var (
	// ErrNotConfigured is returned when no uploader was injected.  Callers
	// treat it exactly like any other publish failure.
	ErrNotConfigured = errors.New("artifact publisher not configured")

	ErrEmptyPayload = errors.New("artifact payload is empty")
	ErrTooLarge     = fmt.Errorf("artifact payload exceeds %d bytes", maxPayload)
)

// Uploader is the narrow object-storage contract the publisher depends on.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// Publisher uploads rendered documents and resolves their public URLs.
type Publisher struct {
	uploader  Uploader
	keyPrefix string
	baseURL   string
	timeout   time.Duration
}

// NewPublisher wires an uploader with a key prefix and the public base URL
// under which uploaded keys resolve.  A nil uploader yields a publisher in
// the "not configured" state; Publish then always fails with
// ErrNotConfigured.
func NewPublisher(uploader Uploader, keyPrefix, baseURL string) *Publisher {
	return &Publisher{
		uploader:  uploader,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		timeout:   defaultTimeout,
	}
}

// Configured reports whether an uploader is attached.
func (p *Publisher) Configured() bool { return p != nil && p.uploader != nil }

// Publish uploads data under a sanitized version of suggestedName and
// returns the public URL.  The call is bounded by the publisher timeout so a
// stalled storage backend cannot hold a submission open indefinitely.
func (p *Publisher) Publish(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if !p.Configured() {
		return "", ErrNotConfigured
	}
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if len(data) > maxPayload {
		return "", ErrTooLarge
	}

	key := SanitizeFilename(suggestedName)
	if p.keyPrefix != "" {
		key = p.keyPrefix + "/" + key
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.uploader.Upload(ctx, key, data, "application/pdf"); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return p.baseURL + "/" + key, nil
}

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	dotRuns         = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFilename reduces name to an opaque-safe storage key component:
// alphanumerics, dot, underscore, and hyphen only, with dot runs collapsed so
// no traversal sequence survives, capped at maxKeyLen characters.  An input
// with nothing left after filtering falls back to "document.pdf".
func SanitizeFilename(name string) string {
	s := disallowedChars.ReplaceAllString(name, "")
	s = dotRuns.ReplaceAllString(s, ".")
	s = strings.Trim(s, ".-_")
	if len(s) > maxKeyLen {
		s = s[:maxKeyLen]
		s = strings.Trim(s, ".-_")
	}
	if s == "" {
		return "document.pdf"
	}
	return s
}
