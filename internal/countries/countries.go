// Package countries resolves scraped country names to ISO 3166-1 codes.
package countries

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// ErrHistorical marks a dissolved state; callers drop the row silently.
var ErrHistorical = errors.New("historical country")

// MappingError reports a country name that has no ISO3 mapping.
type MappingError struct {
	Name string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no ISO3 code for country %q", e.Name)
}

// Country is a resolved country identity.
type Country struct {
	Code   string
	Alpha2 string
	Name   string
}

var (
	indexOnce      sync.Once
	foldedCodes    map[string]string
	foldedHist     []string
	displayNames   map[string]string
	foldedCodeKeys []string
)

func fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func buildIndex() {
	foldedCodes = make(map[string]string, len(codes)+len(remap))
	displayNames = make(map[string]string, len(codes))
	for name, code := range codes {
		foldedCodes[fold(name)] = code
		// Prefer the shortest display name when several map to one code.
		if cur, ok := displayNames[code]; !ok || len(name) < len(cur) || (len(name) == len(cur) && name < cur) {
			displayNames[code] = name
		}
	}
	for alias, canonical := range remap {
		if code, ok := codes[canonical]; ok {
			foldedCodes[fold(alias)] = code
		}
	}
	for k := range foldedCodes {
		foldedCodeKeys = append(foldedCodeKeys, k)
	}
	// Longest key first so partial matching is deterministic and prefers
	// the most specific name.
	sort.Slice(foldedCodeKeys, func(i, j int) bool {
		if len(foldedCodeKeys[i]) != len(foldedCodeKeys[j]) {
			return len(foldedCodeKeys[i]) > len(foldedCodeKeys[j])
		}
		return foldedCodeKeys[i] < foldedCodeKeys[j]
	})
	for _, h := range historical {
		foldedHist = append(foldedHist, fold(h))
	}
}

// Resolve maps a scraped country name to its ISO3 identity. Dissolved
// states return ErrHistorical; unknown names return a *MappingError.
func Resolve(name string) (Country, error) {
	indexOnce.Do(buildIndex)

	folded := fold(name)
	if folded == "" {
		return Country{}, &MappingError{Name: name}
	}

	for _, h := range foldedHist {
		if folded == h || strings.Contains(folded, h) {
			return Country{}, ErrHistorical
		}
	}

	if code, ok := foldedCodes[folded]; ok {
		return fromCode(code), nil
	}

	// Partial match covers source-specific decorations such as
	// "Republic of X" variants not covered by the remap table.
	for _, key := range foldedCodeKeys {
		if len(key) > 2 && (strings.Contains(folded, key) || strings.Contains(key, folded)) {
			return fromCode(foldedCodes[key]), nil
		}
	}

	return Country{}, &MappingError{Name: name}
}

func fromCode(code string) Country {
	return Country{
		Code:   code,
		Alpha2: alpha2[code],
		Name:   displayNames[code],
	}
}

// Alpha2 returns the ISO alpha-2 code for an ISO3 code.
func Alpha2(code string) (string, bool) {
	a2, ok := alpha2[code]
	return a2, ok
}
