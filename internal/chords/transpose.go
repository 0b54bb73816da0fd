// Package chords rewrites chord tokens in free-form text by a number of
// semitone steps. Note names follow the German/Polish convention used by the
// songbook: H is the pitch Western notation calls B, and B is B-flat.
// Uppercase roots are major chords, lowercase roots minor.
package chords

import "regexp"

// The two chromatic scales, in semitone order.
var (
	majorNames = [12]string{"C", "Cis", "D", "Dis", "E", "F", "Fis", "G", "Gis", "A", "B", "H"}
	minorNames = [12]string{"c", "cis", "d", "dis", "e", "f", "fis", "g", "gis", "a", "b", "h"}
)

var (
	majorIndex = buildIndex(majorNames)
	minorIndex = buildIndex(minorNames)
)

// Longest names first so "Cis" wins over "C" at the same position.
// The trailing group is the chord suffix (quality, extensions), preserved
// verbatim: C7, dis7, G+, fis-.
var chordRe = regexp.MustCompile(
	`\b(Cis|Dis|Fis|Gis|cis|dis|fis|gis|C|D|E|F|G|A|B|H|c|d|e|f|g|a|b|h)([\w#+\-]*)`)

func buildIndex(names [12]string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	return idx
}

// Transpose shifts every chord root found in line by steps semitones,
// leaving suffixes and non-chord text untouched. The shift wraps modulo 12,
// so any integer is accepted; callers normally clamp to [-11, 11].
func Transpose(line string, steps int) string {
	if line == "" {
		return line
	}
	return chordRe.ReplaceAllStringFunc(line, func(token string) string {
		root, suffix := splitRoot(token)

		if i, ok := majorIndex[root]; ok {
			return majorNames[shift(i, steps)] + suffix
		}
		if i, ok := minorIndex[root]; ok {
			return minorNames[shift(i, steps)] + suffix
		}
		return token
	})
}

// splitRoot separates the chord root from its suffix. Three-letter roots
// (Cis, dis, ...) are tried before the single-letter ones.
func splitRoot(token string) (root, suffix string) {
	if len(token) >= 3 {
		head := token[:3]
		if _, ok := majorIndex[head]; ok {
			return head, token[3:]
		}
		if _, ok := minorIndex[head]; ok {
			return head, token[3:]
		}
	}
	return token[:1], token[1:]
}

func shift(index, steps int) int {
	return ((index+steps)%12 + 12) % 12
}
