// Package magnitude converts financial figures written with Portuguese
// magnitude words ("1,5 bilhão", "US$ 160 milhões", "500 mil") to numbers and
// back.
package magnitude

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Scale multipliers for the supported magnitude words.
const (
	Thousand float64 = 1_000
	Million  float64 = 1_000_000
	Billion  float64 = 1_000_000_000
)

// Longer words precede "mil" in the alternation so "milhões" is not cut short.
var pattern = regexp.MustCompile(`(?i)([\d,.]+)[\s\p{Zs}]*(milhão|milhões|bilhão|bilhões|mil)`)

// Match is the first magnitude expression found in a text.
type Match struct {
	Quantity float64
	Unit     string
	Value    float64
}

// Find locates the first "<quantity> <word>" expression in text. The quantity
// uses Brazilian grouping: every '.' is a thousands separator and ',' marks the
// decimals, so "1.234,5 mil" is 1234.5 thousand. ok is false when text has no
// such expression or its quantity is not a number.
func Find(text string) (Match, bool) {
	m := pattern.FindStringSubmatch(norm.NFC.String(text))
	if m == nil {
		return Match{}, false
	}

	digits := strings.Replace(strings.ReplaceAll(m[1], ".", ""), ",", ".", 1)
	quantity, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Match{}, false
	}

	unit := cases.Fold().String(m[2])
	value := quantity
	if mult, ok := Multiplier(unit); ok {
		value = quantity * mult
	}
	return Match{Quantity: quantity, Unit: unit, Value: value}, true
}

// Parse returns the scaled value of the first magnitude expression in text.
// ok is false when there is nothing to parse; callers treat that as an absent
// value rather than a failure.
func Parse(text string) (value float64, ok bool) {
	m, ok := Find(text)
	if !ok {
		return 0, false
	}
	return m.Value, true
}

// Multiplier maps a magnitude word to its scale. Matching is case-insensitive.
func Multiplier(unit string) (float64, bool) {
	switch cases.Fold().String(norm.NFC.String(unit)) {
	case "mil":
		return Thousand, true
	case "milhão", "milhões":
		return Million, true
	case "bilhão", "bilhões":
		return Billion, true
	}
	return 1, false
}

// Format renders n as "$<value> <word>", picking the largest scale n reaches.
// Values below one thousand, negatives included, are printed without a word.
func Format(n float64) string {
	switch {
	case n >= Billion:
		v := n / Billion
		return render(v, pick(v, "bilhão", "bilhões"))
	case n >= Million:
		v := n / Million
		return render(v, pick(v, "milhão", "milhões"))
	case n >= Thousand:
		return render(n/Thousand, "mil")
	}
	return "$" + formatNumber(n)
}

func pick(v float64, singular, plural string) string {
	if v == 1 {
		return singular
	}
	return plural
}

func render(v float64, unit string) string {
	return "$" + formatNumber(v) + " " + unit
}

func formatNumber(n float64) string {
	if n == 0 {
		n = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
