// Package correlate joins the independently-fetched platform collections
// (projects, environments, applications, services, databases, deployments)
// into one filterable view. Everything in this package is a pure function
// over in-memory snapshots; lookup indexes are rebuilt from scratch on every
// invocation rather than patched incrementally.
package correlate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// NormalizeID canonicalizes the loose identifier shapes found in API payloads
// into a trimmed string, so that 42, "42" and " 42 " compare equal. The empty
// string means the identifier is absent; map builders skip empty keys so
// absent values never collide with each other.
func NormalizeID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case model.FlexID:
		return strings.TrimSpace(string(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		// JSON numbers decode to float64; identifiers are integral in practice.
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// FirstID returns the first value in the chain that normalizes to a non-empty
// identifier. Precedence rules like source_app_uuid over application_uuid
// over application_id are expressed as a single FirstID call so the order
// lives in one place.
func FirstID(vals ...any) string {
	for _, v := range vals {
		if id := NormalizeID(v); id != "" {
			return id
		}
	}
	return ""
}
