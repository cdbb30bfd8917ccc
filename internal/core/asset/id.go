package asset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// idPattern is the canonical shape of an asset id: uppercase prefix,
// dash, digits. SVC-001, PLT-002, CST-014.
var idPattern = regexp.MustCompile(`^[A-Z]+-\d+$`)

// ParsedID is the decomposed form of an asset id.
type ParsedID struct {
	Code     string
	Sequence int
}

// FormatID builds an asset id from a kind code and sequence number.
// Sequence numbers are zero-padded to 3 digits; wider sequences keep
// their natural width (SVC-1000).
func FormatID(code string, seq int) string {
	return fmt.Sprintf("%s-%03d", code, seq)
}

// ParseID decomposes an asset id. It is a pure parse with no store
// lookup: a well-formed id for a deleted asset still parses.
func ParseID(id string) (ParsedID, error) {
	if !idPattern.MatchString(id) {
		return ParsedID{}, fmt.Errorf("%w: %q does not match PREFIX-NNN", ErrMalformedID, id)
	}

	dash := strings.LastIndex(id, "-")
	seq, err := strconv.Atoi(id[dash+1:])
	if err != nil {
		return ParsedID{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	return ParsedID{Code: id[:dash], Sequence: seq}, nil
}

// NextID generates the id following the current per-kind maximum.
// Gaps after deletions are acceptable: allocation never reuses a
// sequence number below the observed maximum.
func NextID(code string, currentMax int) string {
	return FormatID(code, currentMax+1)
}
