package types

import (
	"encoding/json"
	"testing"
)

func TestQuantityString(t *testing.T) {
	tests := []struct {
		in   Quantity
		want string
	}{
		{NewQuantityFromFloat64(0), "0.0000"},
		{NewQuantityFromFloat64(12), "12.0000"},
		{NewQuantityFromFloat64(3.5), "3.5000"},
		{NewQuantityFromFloat64(-0.25), "-0.2500"},
		{NewQuantityFromInt64Scaled(1), "0.0001"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Quantity(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuantityJSONRoundTrip(t *testing.T) {
	tests := []struct {
		json string
		want Quantity
	}{
		{`12.5`, NewQuantityFromFloat64(12.5)},
		{`"7.25"`, NewQuantityFromFloat64(7.25)},
		{`-3`, NewQuantityFromFloat64(-3)},
		{`null`, 0},
		{`"1e2"`, NewQuantityFromFloat64(100)},
	}
	for _, tt := range tests {
		var q Quantity
		if err := json.Unmarshal([]byte(tt.json), &q); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.json, err)
		}
		if q != tt.want {
			t.Errorf("unmarshal %s = %d, want %d", tt.json, q, tt.want)
		}
	}

	out, err := json.Marshal(NewQuantityFromFloat64(42.75))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "42.7500" {
		t.Errorf("marshal = %s, want 42.7500", out)
	}
}

func TestQuantityUnmarshalRejectsGarbage(t *testing.T) {
	var q Quantity
	if err := json.Unmarshal([]byte(`"abc"`), &q); err == nil {
		t.Error("expected error for non-numeric quantity")
	}
}

func TestQuantityArithmetic(t *testing.T) {
	a := NewQuantityFromFloat64(10.5)
	b := NewQuantityFromFloat64(2.25)

	if got := a.Add(b); got != NewQuantityFromFloat64(12.75) {
		t.Errorf("Add = %s", got)
	}
	if !a.IsPositive() {
		t.Error("IsPositive")
	}
	if !a.Neg().IsNegative() {
		t.Error("Neg/IsNegative")
	}
	if got := NewQuantityFromFloat64(-4).Abs(); got != NewQuantityFromFloat64(4) {
		t.Errorf("Abs = %s", got)
	}
	if !Quantity(0).IsZero() {
		t.Error("IsZero")
	}
}
