package scan

import (
	"bytes"

	"mvdan.cc/xurls/v2"
)

const DefaultMaxURLLength = 2048

// Pattern identifies one kind of URL inside raw bytes. Prefix is required;
// Marker must appear somewhere in the URL; the URL ends right after the
// first Suffix, or otherwise at the first byte that cannot appear in a URL.
type Pattern struct {
	Prefix string
	Marker string
	Suffix string
	MaxLen int
}

type Match struct {
	Offset int
	URL    string
}

var strictURL = xurls.Strict()

// FindAll returns every URL matching p in file order.
func FindAll(data []byte, p Pattern) []Match {
	if p.Prefix == "" {
		return nil
	}
	maxLen := p.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultMaxURLLength
	}
	prefix := []byte(p.Prefix)

	var out []Match
	for off := 0; off < len(data); {
		i := bytes.Index(data[off:], prefix)
		if i < 0 {
			break
		}
		start := off + i
		run := data[start : start+urlRunLength(data[start:], maxLen)]
		if u, ok := p.accept(run); ok {
			out = append(out, Match{Offset: start, URL: string(u)})
			off = start + len(u)
			continue
		}
		off = start + len(prefix)
	}
	return out
}

// Latest returns the match that appears last in file order, which belongs to
// the most recent session.
func Latest(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[len(matches)-1], true
}

func (p Pattern) accept(run []byte) ([]byte, bool) {
	if p.Suffix != "" {
		i := bytes.Index(run, []byte(p.Suffix))
		if i < 0 {
			return nil, false
		}
		run = run[:i+len(p.Suffix)]
	}
	// The run is returned as is; the strict matcher only confirms that it
	// opens with a well-formed scheme and host.
	if loc := strictURL.FindIndex(run); loc == nil || loc[0] != 0 {
		return nil, false
	}
	if p.Marker != "" && !bytes.Contains(run, []byte(p.Marker)) {
		return nil, false
	}
	return run, true
}

func urlRunLength(b []byte, max int) int {
	n := 0
	for n < len(b) && n < max && isURLByte(b[n]) {
		n++
	}
	return n
}

// isURLByte reports whether c may appear in a URL: RFC 3986 unreserved and
// reserved characters plus '%'.
func isURLByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~',
		':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=',
		'%':
		return true
	}
	return false
}
