// internal/requestinfo/requestinfo.go
//
// Per-request metadata: user-agent fingerprint, client IP, URL, and
// timestamp.
//
// Context
//   The intake handler logs who is submitting (browser family, device
//   class, bot flag) alongside each accepted request.  This package parses
//   the User-Agent header once per request and stashes the result in the
//   request context so handlers never reparse.  The structs are inert —
//   no database handles, no large buffers — so they are safe to log or
//   JSON-encode.
//
//------------------------------------------------------------------------------

package requestinfo

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	surfer "github.com/avct/uasurfer"
)

// UA holds the parsed user-agent properties the handlers care about.
// Device is one of "Desktop", "Mobile", "Tablet", or "Other".
type UA struct {
	Raw     string
	Browser string
	Version string
	OS      string
	Device  string
	IsBot   bool
}

// RequestInfo is attached to the request context by Enrich.
type RequestInfo struct {
	UA        UA
	IP        net.IP
	URL       *url.URL // pointer copy, safe to dereference read-only
	Timestamp time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil if
// the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// parseUA converts a raw header into our UA struct.  The uasurfer API is
// isolated here so the rest of the codebase never sees its enums; if we
// swap parsers, only this file changes.
func parseUA(raw string) UA {
	ua := surfer.Parse(raw)

	info := UA{
		Raw:     raw,
		Browser: ua.Browser.Name.String(),
		Version: versionToString(ua.Browser.Version),
		OS:      ua.OS.Name.String(),
		IsBot:   ua.IsBot(),
	}

	switch ua.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}

	return info
}

// versionToString renders a semantic version in dotted form while trimming
// trailing zeros, e.g. 17.0.0 → "17", 17.3.0 → "17.3", 17.3.1 → "17.3.1".
func versionToString(v surfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(int(v.Major))
}
