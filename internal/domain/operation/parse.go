package operation

import (
	"strconv"
	"strings"
	"unicode"
)

// LeadingInt interpreta el entero con el que comienza s: admite espacios iniciales y un signo,
// ignora cualquier texto posterior a los dígitos ("50abc" → 50). ok es false si no hay dígitos
// o el valor no cabe en un int.
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCount valida el texto de cantidad ingresado por el operador: debe empezar por un entero positivo.
func ParseCount(text string) (int, bool) {
	n, ok := LeadingInt(text)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}
