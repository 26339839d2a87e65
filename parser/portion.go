package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/token"
)

// ParsePortion reads a measured amount in one of its three written forms:
// a whole count ("2"), a decimal with digits on both sides of the point
// ("0.5"), or a rational with a nonzero denominator ("1/2").
func ParsePortion(s string) (token.Portion, error) {
	switch {
	case s == "":
		return token.Portion{}, errors.New("empty portion")
	case strings.Contains(s, "."):
		return parseDecimal(s)
	case strings.Contains(s, "/"):
		return parseRational(s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return token.Portion{}, fmt.Errorf("bad integer %q", s)
	}
	return token.Integer(n), nil
}

func parseDecimal(s string) (token.Portion, error) {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || whole == "" || frac == "" || strings.ContainsAny(frac, "./") {
		return token.Portion{}, fmt.Errorf("bad decimal %q", s)
	}
	if len(frac) > 19 {
		return token.Portion{}, fmt.Errorf("decimal %q has too many places", s)
	}
	num, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return token.Portion{}, fmt.Errorf("bad decimal %q", s)
	}
	den := uint64(1)
	for range frac {
		den *= 10
	}
	return token.Decimal(num, den), nil
}

func parseRational(s string) (token.Portion, error) {
	top, bottom, ok := strings.Cut(s, "/")
	if !ok || top == "" || bottom == "" || strings.Contains(bottom, "/") {
		return token.Portion{}, fmt.Errorf("bad rational %q", s)
	}
	num, err := strconv.ParseUint(top, 10, 64)
	if err != nil {
		return token.Portion{}, fmt.Errorf("bad rational %q", s)
	}
	den, err := strconv.ParseUint(bottom, 10, 64)
	if err != nil {
		return token.Portion{}, fmt.Errorf("bad rational %q", s)
	}
	if den == 0 {
		return token.Portion{}, fmt.Errorf("zero denominator in %q", s)
	}
	return token.Rational(num, den), nil
}
