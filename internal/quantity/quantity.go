// Package quantity parses and formats recipe quantities: plain decimals,
// fractions and mixed numbers ("2.5", "3/4", "1 1/2").
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxDenominator bounds the fraction search in Format.
const DefaultMaxDenominator = 16

// fractionEpsilon is the error under which a candidate fraction counts as an
// exact match and ends the denominator search early.
const fractionEpsilon = 1e-4

// Parse reads a quantity from free-form text. ok is false for empty input and
// for anything malformed; Parse never panics. A fraction may be preceded by a
// single whole-number term ("1 1/2" = 1.5); more than two terms is invalid.
func Parse(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	if !strings.Contains(text, "/") {
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	fields := strings.Fields(text)
	var whole float64
	frac := fields[0]
	switch len(fields) {
	case 1:
	case 2:
		w, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		whole = w
		frac = fields[1]
	default:
		return 0, false
	}

	i := strings.IndexByte(frac, '/')
	if i < 0 || strings.IndexByte(frac[i+1:], '/') >= 0 {
		return 0, false
	}
	num, err := strconv.ParseFloat(frac[:i], 64)
	if err != nil {
		return 0, false
	}
	den, err := strconv.ParseFloat(frac[i+1:], 64)
	if err != nil || den == 0 {
		return 0, false
	}
	return whole + num/den, true
}

// Format renders an amount as a whole number, a fraction or a mixed number,
// searching denominators 1..maxDenominator (DefaultMaxDenominator when <= 0)
// for the closest match. Smaller denominators win ties, so simpler fractions
// are preferred. Amounts with no usable fraction fall back to two decimals.
func Format(amount float64, maxDenominator int) string {
	if maxDenominator <= 0 {
		maxDenominator = DefaultMaxDenominator
	}
	if amount < 0 {
		return "-" + Format(-amount, maxDenominator)
	}
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	whole := math.Floor(amount)
	frac := amount - whole

	bestNum, bestDen := 0, 1
	bestDiff := math.MaxFloat64
	for den := 1; den <= maxDenominator; den++ {
		num := math.Round(frac * float64(den))
		diff := math.Abs(frac - num/float64(den))
		if diff < bestDiff {
			bestDiff, bestNum, bestDen = diff, int(num), den
		}
		if diff < fractionEpsilon {
			break
		}
	}

	if g := gcd(bestNum, bestDen); g > 1 {
		bestNum /= g
		bestDen /= g
	}
	if bestNum == 0 {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	if whole != 0 {
		return fmt.Sprintf("%s %d/%d", strconv.FormatFloat(whole, 'f', -1, 64), bestNum, bestDen)
	}
	return fmt.Sprintf("%d/%d", bestNum, bestDen)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
