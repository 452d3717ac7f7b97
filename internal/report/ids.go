package report

import (
	"hash/fnv"
	"strconv"
)

// stableID derives a deterministic fallback id for records that lack a
// natural one, so repeated runs over identical input produce identical
// report ids.
func stableID(source, date, description string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(date))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(description))
	return strconv.FormatUint(h.Sum64(), 16)
}

// idOr returns the record's natural id when present, else a stable
// derived one.
func idOr(natural, source, date, description string) string {
	if natural != "" {
		return natural
	}
	return stableID(source, date, description)
}
