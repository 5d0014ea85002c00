package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
)

// ParsePathID parses a numeric path parameter and requires it to be positive.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid "+key)
	}
	return value, nil
}

// ParseQueryID parses an optional numeric query parameter. A missing or empty
// value yields (0, false, nil); a malformed or non-positive value is an error.
func ParseQueryID(r *http.Request, key string) (int64, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, false, pkgerrors.New(pkgerrors.CodeValidation, "Invalid "+key)
	}
	return value, true, nil
}

// ParseQueryInt parses an optional bounded integer query parameter, falling
// back to defaultVal when absent.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" must be numeric")
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" out of range")
	}
	return value, nil
}

// ParseQueryBoolFlag parses an optional "0"/"1" query flag. Any other value is
// treated as absent, mirroring the tolerant behavior of the mobile clients.
func ParseQueryBoolFlag(r *http.Request, key string) *bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	switch raw {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	}
	return nil
}
