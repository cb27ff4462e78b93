package codegen

import (
	"strings"
	"unicode"
)

var initialisms = map[string]string{
	"id":   "ID",
	"http": "HTTP",
	"url":  "URL",
	"abi":  "ABI",
}

// goName converts a kebab-case WIT identifier to an exported Go name.
func goName(witName string) string {
	var b strings.Builder
	for _, part := range strings.Split(witName, "-") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// lowerFirst unexports a Go name, lowering a leading initialism as a unit:
// HTTPMethod -> httpMethod.
func lowerFirst(name string) string {
	r := []rune(name)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n == 0 {
		return name
	}
	if n > 1 && n < len(r) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
