// Package datefmt renders timestamps with user-configured date patterns.
//
// Two pattern dialects are accepted:
//
//   - Unicode (date-fns) letters such as "yyyyMMdd" or "dd.MM.yyyy HH:mm".
//     Text inside single quotes is literal; '' is a literal quote.
//   - strftime patterns, recognized by a '%' anywhere in the pattern,
//     such as "%Y-%m-%d".
//
// Unknown pattern letters are an error so that callers can fall back to
// [DefaultPattern]. So are "D" and "DD": day of year needs at least "DDD".
package datefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultPattern renders a sortable numeric date such as 20240115.
const DefaultPattern = "yyyyMMdd"

var (
	// ErrEmptyPattern is returned for an empty pattern.
	ErrEmptyPattern = errors.New("empty date pattern")
	// ErrUnterminatedQuote is returned when a quoted literal is not closed.
	ErrUnterminatedQuote = errors.New("unterminated quote in date pattern")
)

// Format renders t using pattern.
func Format(t time.Time, pattern string) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}
	if strings.Contains(pattern, "%") {
		return strftime.Format(pattern, t), nil
	}

	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			end, lit, err := quoted(runes, i)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
			i = end
			continue
		}

		if !isASCIILetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		field, err := render(t, r, n)
		if err != nil {
			return "", err
		}
		b.WriteString(field)
		i += n
	}
	return b.String(), nil
}

// MustFormat renders t with pattern and falls back to DefaultPattern when
// pattern is empty or invalid.
func MustFormat(t time.Time, pattern string) string {
	if s, err := Format(t, pattern); err == nil {
		return s
	}
	s, _ := Format(t, DefaultPattern)
	return s
}

// quoted reads a quoted literal starting at runes[start] == '\''.
// Returns the index after the closing quote and the literal text.
func quoted(runes []rune, start int) (int, string, error) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return start + 2, "'", nil
	}
	var b strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return i + 1, b.String(), nil
	}
	return 0, "", ErrUnterminatedQuote
}

func render(t time.Time, letter rune, n int) (string, error) {
	switch letter {
	case 'y':
		if n == 2 {
			return pad(t.Year()%100, 2), nil
		}
		return pad(t.Year(), n), nil
	case 'M':
		switch n {
		case 1, 2:
			return pad(int(t.Month()), n), nil
		case 3:
			return t.Month().String()[:3], nil
		case 4:
			return t.Month().String(), nil
		default:
			return t.Month().String()[:1], nil
		}
	case 'd':
		return pad(t.Day(), min(n, 2)), nil
	case 'D':
		// Day of year needs DDD or longer.
		if n < 3 {
			return "", fmt.Errorf("date pattern letter %q is day of year, use %q for day of month",
				strings.Repeat("D", n), strings.Repeat("d", n))
		}
		return pad(t.YearDay(), n), nil
	case 'E':
		switch {
		case n <= 3:
			return t.Weekday().String()[:3], nil
		case n == 4:
			return t.Weekday().String(), nil
		default:
			return t.Weekday().String()[:1], nil
		}
	case 'H':
		return pad(t.Hour(), min(n, 2)), nil
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, min(n, 2)), nil
	case 'm':
		return pad(t.Minute(), min(n, 2)), nil
	case 's':
		return pad(t.Second(), min(n, 2)), nil
	case 'S':
		frac := pad(t.Nanosecond(), 9)
		if n > 9 {
			return frac + strings.Repeat("0", n-9), nil
		}
		return frac[:n], nil
	case 'a':
		if t.Hour() < 12 {
			return "AM", nil
		}
		return "PM", nil
	case 'X', 'x':
		return zone(t, letter == 'X', n), nil
	}
	return "", fmt.Errorf("unknown date pattern letter %q", strings.Repeat(string(letter), n))
}

// zone renders the UTC offset. X prints "Z" for UTC, x always prints digits.
func zone(t time.Time, zulu bool, n int) string {
	_, offset := t.Zone()
	if zulu && offset == 0 {
		return "Z"
	}
	switch n {
	case 1:
		return t.Format("-07")
	case 2:
		return t.Format("-0700")
	default:
		return t.Format("-07:00")
	}
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
