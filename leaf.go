package severus

import (
	"math"
	"net/url"
	"strings"
	"unicode"
)

// Text extracts the flattened text content of the first node matching
// selector. Whitespace is trimmed unless NoTrim is given.
func Text(selector string, opts ...Option) Extractor[string] {
	o := newOptions(opts)
	return Within(selector, func(n Node) (string, bool) {
		text := n.Text()
		if o.trim {
			text = strings.TrimSpace(text)
		}
		return text, true
	})
}

// Attr extracts the named attribute of the first node matching selector.
// The value is absent when the node has no such attribute.
func Attr(selector, name string, opts ...Option) Extractor[string] {
	o := newOptions(opts)
	return Within(selector, func(n Node) (string, bool) {
		return attr(n, name, o.raw)
	})
}

func attr(n Node, name string, raw bool) (string, bool) {
	if raw {
		if rn, ok := n.(RawAttrNode); ok {
			return rn.RawAttr(name)
		}
	}
	return n.Attr(name)
}

// URL parses an attribute of the first node matching selector as a URL.
// The href attribute is read unless Attribute names another one. Missing,
// empty and unparsable values are absent. Use Map to decode the result.
func URL(selector string, opts ...Option) Extractor[*url.URL] {
	o := newOptions(opts)
	return Within(selector, func(n Node) (*url.URL, bool) {
		href, ok := attr(n, o.attribute, o.raw)
		if !ok || href == "" {
			return nil, false
		}
		u, err := url.Parse(href)
		if err != nil {
			return nil, false
		}
		return u, true
	})
}

// Int parses the text of the first node matching selector as an integer,
// reading the longest run of digits valid in the configured radix.
//
// Unlike other extractors Int is never absent: when selector does not match
// or no digits can be read, it yields NaN.
func Int(selector string, opts ...Option) Extractor[float64] {
	o := newOptions(opts)
	text := Within(selector, func(n Node) (string, bool) {
		return n.Text(), true
	})
	return func(n Node) (float64, bool) {
		s, ok := text(n)
		if !ok {
			return math.NaN(), true
		}
		return parseInt(s, o.radix, o.trim), true
	}
}

func parseInt(s string, radix int, skipSpace bool) float64 {
	if skipSpace {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}

	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	hasHexPrefix := len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	switch {
	case radix == 0 && hasHexPrefix:
		radix = 16
		s = s[2:]
	case radix == 0:
		radix = 10
	case radix == 16 && hasHexPrefix:
		s = s[2:]
	}
	if radix < 2 || radix > 36 {
		return math.NaN()
	}

	var n float64
	digits := 0
	for _, r := range s {
		d := digitValue(r)
		if d >= radix {
			break
		}
		n = n*float64(radix) + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * n
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return math.MaxInt
}

// Exists reports true when selector matches. It is absent otherwise, and
// never yields false.
func Exists(selector string) Extractor[bool] {
	return Within(selector, func(Node) (bool, bool) {
		return true, true
	})
}
