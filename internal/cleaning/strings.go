package cleaning

import (
	"regexp"
	"strings"

	"datacli/internal/dataset"
)

// specialChars matches everything outside letters, digits and whitespace
var specialChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// NormalizeString lowercases a value, strips special characters and trims
// surrounding whitespace. Trimming runs last so characters removed at the
// edges cannot leave stray spaces behind.
func NormalizeString(s string) string {
	s = strings.ToLower(s)
	s = specialChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// NormalizeStrings applies NormalizeString to every value of every string
// column. Numeric columns are skipped.
func NormalizeStrings(ds *dataset.Dataset) {
	for _, name := range ds.Columns() {
		col, err := ds.Column(name)
		if err != nil || col.Kind != dataset.KindString {
			continue
		}
		for i, v := range col.Strings {
			col.Strings[i] = NormalizeString(v)
		}
	}
}
