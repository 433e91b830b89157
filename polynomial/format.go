package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// format renders the coefficients, highest degree first.
//
// The leading coefficient is omitted only when it equals +1: a leading -1 is
// printed, e.g. "-1x^2 + 3". Other terms print their absolute value after a
// " + " or " - " separator, omit it when it equals 1, and are skipped when
// numerically zero.
func (p *Polynomial) format() string {

	coeffs := p.values()
	degree := len(coeffs) - 1

	if degree == 0 {
		return formatFloat(coeffs[0])
	}

	var sb strings.Builder

	if lead := coeffs[0]; !equalCoeff(lead, 1) {
		sb.WriteString(formatFloat(lead))
	}
	sb.WriteString(monomial(degree))

	for k := degree - 1; k >= 1; k-- {

		c := coeffs[degree-k]

		if isZero(c) {
			continue
		}

		sb.WriteString(separator(c))

		if !equalCoeff(math.Abs(c), 1) {
			sb.WriteString(formatFloat(math.Abs(c)))
		}

		sb.WriteString(monomial(k))
	}

	if c := coeffs[degree]; !isZero(c) {
		sb.WriteString(separator(c))
		sb.WriteString(formatFloat(math.Abs(c)))
	}

	return sb.String()
}

// formatFloat prints the shortest decimal representation of f that
// round-trips, without exponent and with '.' as decimal separator.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func monomial(degree int) string {
	if degree == 1 {
		return "x"
	}
	return "x^" + strconv.Itoa(degree)
}

func separator(c float64) string {
	if c < 0 {
		return " - "
	}
	return " + "
}
