// SPDX-License-Identifier: MIT

package codec

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ParseCell parses a single field the lenient way a spreadsheet cell is read:
// surrounding whitespace is ignored and the longest leading decimal literal
// wins ("12abc" → 12, "3.5e2x" → 350). No literal, or a non-finite result,
// reports ok=false.
func ParseCell(text string) (float64, bool) {
	lit := numericPrefix(strings.TrimSpace(text))
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// numericPrefix returns the longest prefix of s matching
// [+-]?(digits[.digits*]|.digits)([eE][+-]?digits)?, or "" when none.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// An exponent only counts when it carries at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return s[:i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// keepNumeric strips every byte except digits, '.' and '-'.
func keepNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// Decimals is the fixed number of fraction digits used for every exported
// dense value.
const Decimals = 3

// FormatFixed renders v with exactly three fraction digits.
//
// Rounding follows the fixed-point rule used by web front ends: the nearest
// representable thousandth wins, and an exact tie rounds away from zero
// (0.0625 → "0.063", -0.0625 → "-0.063"). strconv alone would round ties to
// even. Negative zero prints as "0.000"; values that round to zero from below
// keep their sign ("-0.000").
func FormatFixed(v float64) string {
	if v == 0 {
		return "0.000"
	}
	s := strconv.FormatFloat(v, 'f', Decimals, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}

	// |v|·2000 is an odd integer exactly when |v|·1000 ends in .5.
	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(2000))
	if !x.IsInt() {
		return s
	}
	k, _ := x.Int(nil)
	if k.Bit(0) == 0 {
		return s
	}

	// Tie: thousandths = (k+1)/2, i.e. rounded away from zero.
	k.Add(k, big.NewInt(1))
	k.Rsh(k, 1)
	whole, frac := new(big.Int).QuoRem(k, big.NewInt(1000), new(big.Int))
	out := whole.String() + "." + leftPad(frac.String(), Decimals)
	if v < 0 {
		out = "-" + out
	}

	return out
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
