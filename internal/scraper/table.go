package scraper

import (
	"strconv"
	"strings"
)

func cleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cellInt parses a medal-count cell. Sources occasionally decorate counts
// with footnote markers or thousands separators.
func cellInt(s string) (int, bool) {
	s = cleanCell(s)
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexAny(s, "[("); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" || s == "-" || s == "–" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
