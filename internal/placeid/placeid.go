// Package placeid provides identifier helpers shared by the CBDB and TGAZ
// clients.
package placeid

import (
	"strconv"
	"strings"
)

// TGAZPrefix is the source-system prefix TGAZ expects on place identifiers
// in detail lookup paths. All records covered by the service carry the
// Harvard ("hvd") source code.
const TGAZPrefix = "hvd_"

// NormalizeTGAZ ensures a TGAZ place identifier carries the source prefix.
// "80547" becomes "hvd_80547"; an already prefixed identifier is returned
// unchanged. Surrounding whitespace is stripped.
func NormalizeTGAZ(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return id
	}
	if strings.HasPrefix(id, TGAZPrefix) {
		return id
	}
	return TGAZPrefix + id
}

// HasTGAZPrefix reports whether id already carries the source prefix.
func HasTGAZPrefix(id string) bool {
	return strings.HasPrefix(strings.TrimSpace(id), TGAZPrefix)
}

// ParseCBDB parses a CBDB numeric place identifier, tolerating surrounding
// whitespace. CBDB place IDs are plain positive integers.
func ParseCBDB(id string) (int, bool) {
	id = strings.TrimSpace(id)
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
