package http

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecimalValidation(t *testing.T) {
	type P struct {
		Amount decimal.Decimal  `json:"amount" validate:"decgt0,dec2"`
		Income *decimal.Decimal `json:"income" validate:"omitempty,decgte0"`
	}
	cv := NewValidator()

	zero := decimal.Zero
	for _, ok := range []P{
		{Amount: decimal.RequireFromString("5000")},
		{Amount: decimal.RequireFromString("0.01"), Income: &zero},
		{Amount: decimal.RequireFromString("1234.50")},
	} {
		if err := cv.Validate(ok); err != nil {
			t.Fatalf("expected valid %+v, got %v", ok, err)
		}
	}

	tests := []struct {
		name  string
		in    P
		field string
		msg   string
	}{
		{"zero amount", P{Amount: decimal.Zero}, "amount", "positive amount"},
		{"negative amount", P{Amount: decimal.RequireFromString("-5")}, "amount", "positive amount"},
		{"three decimals", P{Amount: decimal.RequireFromString("10.005")}, "amount", "at most 2 decimal places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if fe := ToFieldErrors(err); !containsFieldMsg(fe, tt.field, tt.msg) {
				t.Fatalf("expected %q on %s, got %+v", tt.msg, tt.field, fe)
			}
		})
	}

	neg := decimal.RequireFromString("-1")
	err := cv.Validate(P{Amount: decimal.NewFromInt(1), Income: &neg})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "income", "must not be negative") {
		t.Fatalf("expected negative income error, got %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string `json:"name" validate:"required"`
		Min    int    `json:"min" validate:"gte=10"`
		Max    int    `json:"max" validate:"lte=5"`
		Method string `json:"payment_method" validate:"oneof=cash check"`
		Plain  string `validate:"required"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Min: 9, Max: 6, Method: "wire"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for min: %+v", fe)
	}
	if !containsFieldMsg(fe, "max", "less than or equal to 5") {
		t.Fatalf("missing lte message for max: %+v", fe)
	}
	if !containsFieldMsg(fe, "payment_method", "one of cash check") {
		t.Fatalf("missing oneof message: %+v", fe)
	}
	// no json tag falls back to the Go name
	if !containsFieldMsg(fe, "Plain", "is required") {
		t.Fatalf("missing Go field name fallback: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
