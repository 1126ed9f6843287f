package engine

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const unknownKey = "unknown"

// NormalizeKey turns a display name into a chart series identifier:
// diacritics stripped, whitespace runs replaced by "_", anything outside
// [A-Za-z0-9_] dropped.
func NormalizeKey(name string) string {
	// transformers keep state, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	inSpace := false
	for _, r := range stripped {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		if r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return unknownKey
	}
	return b.String()
}

// assignKeys gives every label a distinct normalized key. Labels are visited
// in ascending order so the same label set always yields the same keys;
// collisions get a numeric suffix.
func assignKeys(labels []string) (map[string]string, []string) {
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)

	byLabel := make(map[string]string, len(sorted))
	used := make(map[string]struct{}, len(sorted))
	order := make([]string, 0, len(sorted))

	for _, label := range sorted {
		if _, done := byLabel[label]; done {
			continue
		}
		base := NormalizeKey(label)
		key := base
		for n := 2; ; n++ {
			if _, taken := used[key]; !taken {
				break
			}
			key = base + "_" + strconv.Itoa(n)
		}
		used[key] = struct{}{}
		byLabel[label] = key
		order = append(order, label)
	}
	return byLabel, order
}
