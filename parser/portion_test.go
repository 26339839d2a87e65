package parser

import (
	"testing"

	"github.com/gateflow-xyz/go-gateflow/token"
)

func TestParsePortion(t *testing.T) {
	tests := []struct {
		input string
		want  token.Portion
	}{
		{"2", token.Integer(2)},
		{"010", token.Integer(10)},
		{"1234", token.Integer(1234)},
		{"0.5", token.Decimal(5, 10)},
		{"12.5", token.Decimal(125, 10)},
		{"10.10", token.Decimal(1010, 100)},
		{"0.05", token.Decimal(5, 100)},
		{"3/2", token.Rational(3, 2)},
		{"1/2", token.Rational(1, 2)},
		{"10/3", token.Rational(10, 3)},
	}
	for _, tt := range tests {
		got, err := ParsePortion(tt.input)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestParsePortion_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"2nd",
		".5",
		"5.",
		"1.2.3",
		"1.2/3",
		"1/2/3",
		"/2",
		"2/",
		"1/0",
		"0.00000000000000000001",
	}
	for _, in := range inputs {
		if _, err := ParsePortion(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
