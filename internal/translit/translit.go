// Package translit turns raw display-script login names into canonical
// ASCII login handles: Han runes become pinyin syllables, accented Latin
// loses its diacritics, whitespace is removed.
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/unicode/norm"
)

var pinyinArgs = pinyin.NewArgs()

// LoginName normalizes a raw login name. The result is deterministic for a
// given input.
func LoginName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if unicode.Is(unicode.Han, r) {
			if syllables := pinyin.SinglePinyin(r, pinyinArgs); len(syllables) > 0 {
				b.WriteString(syllables[0])
				continue
			}
		}
		b.WriteRune(r)
	}

	s := stripDiacritics(b.String())

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// stripDiacritics decomposes to NFD and drops combining marks, so "José"
// becomes "Jose".
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
