package extract

import (
	"strings"
)

// Fold concatenates the text of every text-carrying fragment, each followed by sep.
// If the stream reports an error, Fold returns it and no partial text.
func Fold(frags Fragments, sep string) (string, error) {
	var b strings.Builder
	for frag, err := range frags {
		if err != nil {
			return "", err
		}
		if frag.Text == "" {
			continue
		}
		b.WriteString(frag.Text)
		b.WriteString(sep)
	}
	return b.String(), nil
}
