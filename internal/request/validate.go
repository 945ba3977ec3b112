// internal/request/validate.go
//
// Cerney Designs – server-side validation and sanitization.
//
// Context
//   When the browser posts the intake form, this file verifies the
//   submission: required fields, length bounds, enum membership, and format
//   checks, one rule per field from the Fields table.  Violations are
//   captured in []ErrorField so the handler can surface every problem at
//   once instead of stopping at the first.
//
// Workflow
//   •  Validate walks the Fields table in order and checks each raw value.
//   •  Values that pass are run through Sanitize, which neutralizes content
//      that could be interpreted as markup or carry control characters.
//      Sanitization is a separate defense from validation and always runs,
//      because length and format checks alone cannot catch encoding-level
//      attacks.
//   •  On any violation no Values map is returned, so callers cannot
//      accidentally act on partial input.
//
//------------------------------------------------------------------------------

package request

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// ErrorField describes a single validation failure so the client can
// highlight the exact input.
type ErrorField struct {
	Name    string `json:"field"`
	Message string `json:"message"`
}

// phonePattern permits digits, spaces, and common phone punctuation only.
var phonePattern = regexp.MustCompile(`^[0-9+\-().\s]+$`)

// Validate checks posted form data against the Fields table.  It returns the
// sanitized value map and any field errors.  A non-empty error slice means
// the submission must be rejected; in that case the map is nil.
func Validate(posted url.Values) (Values, []ErrorField) {
	var errs []ErrorField
	clean := make(Values, len(Fields))

	for _, f := range Fields {
		raw := strings.TrimSpace(posted.Get(f.Name))

		if f.Required && raw == "" {
			errs = append(errs, ErrorField{f.Name, fmt.Sprintf("%s is required.", f.Label)})
			continue
		}
		// Empty optional field: nothing more to do.
		if raw == "" {
			continue
		}

		if msg := checkField(&f, raw); msg != "" {
			errs = append(errs, ErrorField{f.Name, msg})
			continue
		}
		clean[f.Name] = Sanitize(raw)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return clean, nil
}

// checkField applies the type-specific rule for f.  Returns empty string on
// success, a user-facing message on failure.
func checkField(f *FieldDef, val string) string {
	if msg := lengthCheck(f, val); msg != "" {
		return msg
	}

	switch f.Type {
	case "text", "textarea", "phone", "email", "urllist":
		// Format checks below; length already done.
	case "select":
		if !optionAllowed(f.Options, val) {
			return fmt.Sprintf("%s must be one of the listed choices.", f.Label)
		}
		return ""
	default:
		return fmt.Sprintf("Unsupported field type %q.", f.Type)
	}

	switch f.Type {
	case "email":
		if _, err := mail.ParseAddress(val); err != nil {
			return fmt.Sprintf("%s must be a valid email address.", f.Label)
		}
	case "phone":
		if !phonePattern.MatchString(val) {
			return fmt.Sprintf("%s may contain digits, spaces, and punctuation only.", f.Label)
		}
	case "urllist":
		if msg := checkURLList(f, val); msg != "" {
			return msg
		}
	}
	return ""
}

// lengthCheck validates MinLength / MaxLength rules.  Lengths are counted in
// characters, not bytes, so multi-byte input is not penalized.
func lengthCheck(f *FieldDef, s string) string {
	n := len([]rune(s))
	if f.MinLength > 0 && n < f.MinLength {
		return fmt.Sprintf("%s must be at least %d characters.", f.Label, f.MinLength)
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return fmt.Sprintf("%s must be at most %d characters.", f.Label, f.MaxLength)
	}
	return ""
}

// checkURLList validates a newline- or comma-delimited list where each entry
// is either a parseable absolute URL or a short free-text note.
func checkURLList(f *FieldDef, val string) string {
	for _, entry := range splitList(val) {
		if isURL(entry) {
			continue
		}
		if len([]rune(entry)) > maxFallbackEntry {
			return fmt.Sprintf("%s entries must be valid URLs or under %d characters.",
				f.Label, maxFallbackEntry)
		}
	}
	return ""
}

// splitList breaks val on newlines and commas, trimming and dropping empty
// entries.
func splitList(val string) []string {
	parts := strings.FieldsFunc(val, func(r rune) bool {
		return r == '\n' || r == ','
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isURL reports whether s parses as an absolute http(s) URL.
func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func optionAllowed(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

// Sanitize neutralizes content that downstream viewers could interpret as
// executable markup.  It trims surrounding whitespace, drops control
// characters (keeping newlines and tabs, which textarea input legitimately
// contains), and removes the angle brackets that make markup possible.
// Removal rather than escaping keeps the function idempotent: sanitizing an
// already-sanitized string yields the same string.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
			// dropped
		case r == '<' || r == '>':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
