package lox

import "testing"

func TestValueTruthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{BoolValue(false), false},
		{BoolValue(true), true},
		{NumberValue(0), true},
		{StringValue(""), true},
		{NumberValue(1), true},
	}
	for _, c := range cases {
		if got := c.v.IsTruthy(); got != c.want {
			t.Errorf("IsTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestValueEquality(t *testing.T) {
	if !Nil.Equals(Nil) {
		t.Error("Nil == Nil should be true")
	}
	if Nil.Equals(NumberValue(0)) {
		t.Error("Nil == 0 should be false")
	}
	if !NumberValue(1).Equals(NumberValue(1)) {
		t.Error("1 == 1 should be true")
	}
	if NumberValue(1).Equals(StringValue("1")) {
		t.Error("1 == \"1\" should be false: no cross-kind coercion")
	}
}

func TestValueStringFormatting(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NumberValue(5), "5"},
		{NumberValue(5.5), "5.5"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{Nil, "nil"},
		{StringValue("hi"), "hi"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}
