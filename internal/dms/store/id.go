package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IDFormat describes how an entity type renders its identifiers:
// PREFIX-001, or PREFIX-YYYYMMDD-001 when WithDate is set.
type IDFormat struct {
	Prefix   string
	WithDate bool
	Width    int
}

// Format renders the identifier for sequence number seq created at now.
func (f IDFormat) Format(seq int, now time.Time) string {
	width := f.Width
	if width <= 0 {
		width = 3
	}
	if f.WithDate {
		return fmt.Sprintf("%s-%s-%0*d", f.Prefix, now.Format("20060102"), width, seq)
	}
	return fmt.Sprintf("%s-%0*d", f.Prefix, width, seq)
}

// Sequence extracts the trailing sequence number of an identifier in this format.
func (f IDFormat) Sequence(id string) (int, bool) {
	if !strings.HasPrefix(id, f.Prefix+"-") {
		return 0, false
	}
	i := strings.LastIndexByte(id, '-')
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
