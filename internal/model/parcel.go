package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ParcelKey identifies a land parcel by its borough-block-lot key,
// held as the zero-padded 10-digit BBL string.
type ParcelKey struct {
	Padded string `json:"bbl"`
}

// ParseBBL normalizes a raw parcel identifier into a ParcelKey.
// Non-digit characters are stripped, short keys are left-padded with
// zeros, and long keys are truncated to the leading 10 digits.
func ParseBBL(raw string) (ParcelKey, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	clean := b.String()
	if clean == "" {
		return ParcelKey{}, eris.Errorf("model: no digits in bbl %q", raw)
	}
	if len(clean) > 10 {
		clean = clean[:10]
	}
	for len(clean) < 10 {
		clean = "0" + clean
	}
	return ParcelKey{Padded: clean}, nil
}

// Borough returns the single borough digit.
func (k ParcelKey) Borough() string { return k.Padded[:1] }

// PaddedBlock returns the 5-digit zero-padded block component.
func (k ParcelKey) PaddedBlock() string { return k.Padded[1:6] }

// PaddedLot returns the 4-digit zero-padded lot component.
func (k ParcelKey) PaddedLot() string { return k.Padded[6:] }

// Block returns the block component with leading zeros trimmed.
// Upstream block/lot-style datasets key on the trimmed form.
func (k ParcelKey) Block() string { return trimZeros(k.PaddedBlock()) }

// Lot returns the lot component with leading zeros trimmed.
func (k ParcelKey) Lot() string { return trimZeros(k.PaddedLot()) }

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
