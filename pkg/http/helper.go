package http

import (
	"math"
	"net/http"
	apperrors "rentals/pkg/errors"
	"strconv"
	"strings"
)

// QueryFloat reads a non-negative finite query parameter, returning def when
// it is absent or blank.
func QueryFloat(r *http.Request, name string, def float64) (float64, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid " + name + " parameter: " + s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.InvalidInput("invalid " + name + " parameter: " + s)
	}
	if v < 0 {
		return 0, apperrors.InvalidInput(name + " cannot be negative")
	}
	return v, nil
}

func QueryString(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
