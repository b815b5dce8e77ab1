package library

import "strings"

// MaxNameLength bounds the normalized form of a song name. Over-length names
// are rejected instead of truncated, so two distinct long titles can never
// collapse into one identity.
const MaxNameLength = 255

// Normalize maps a raw song title to its canonical form: uppercase ASCII
// letters are lowercased, lowercase letters and spaces are kept and every
// other byte is dropped. The canonical form is the identity key for every
// index in this package, so "Imagine" and "im4gine!" name the same song.
func Normalize(raw string) string {
	builder := strings.Builder{}
	builder.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			builder.WriteByte(c - 'A' + 'a')
		case (c >= 'a' && c <= 'z') || c == ' ':
			builder.WriteByte(c)
		}
	}

	return builder.String()
}
