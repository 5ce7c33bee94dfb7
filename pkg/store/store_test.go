package store

import "testing"

func TestStoreBasic(t *testing.T) {
	s := New()
	s.Set("name", String("Alice"))
	s.Set("age", Number(30))
	s.Set("active", Bool(true))

	if got := s.GetStr("name"); got != "Alice" {
		t.Errorf("GetStr(name) = %q", got)
	}
	if n, ok := s.GetNumber("age"); !ok || n != 30 {
		t.Errorf("GetNumber(age) = %v, %v", n, ok)
	}
	if !s.GetBool("active") {
		t.Error("GetBool(active) = false")
	}
	if !s.Contains("name") {
		t.Error("Contains(name) = false")
	}
}

func TestStoreGracefulDefaults(t *testing.T) {
	s := New()
	s.Set("num", Number(5))

	if got := s.GetStr("missing"); got != "" {
		t.Errorf("GetStr(missing) = %q, want empty", got)
	}
	if got := s.GetStr("num"); got != "" {
		t.Errorf("GetStr on a number = %q, want empty", got)
	}
	if _, ok := s.GetNumber("missing"); ok {
		t.Error("GetNumber(missing) reported ok")
	}
	if s.GetBool("num") {
		t.Error("GetBool on a number = true, want false")
	}
}

func TestStoreRemove(t *testing.T) {
	s := New()
	s.Set("k", String("v"))
	if v, ok := s.Remove("k"); !ok || v.String() != "v" {
		t.Errorf("Remove(k) = %v, %v", v, ok)
	}
	if s.Contains("k") {
		t.Error("key still present after Remove")
	}
	if _, ok := s.Remove("k"); ok {
		t.Error("removing a missing key reported ok")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), ""},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(42), "42"}, // no trailing .0
		{Number(3.14), "3.14"},
		{Number(-7), "-7"},
		{String("hi"), "hi"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueParseNumber(t *testing.T) {
	if n, ok := String("42").ParseNumber(); !ok || n != 42 {
		t.Errorf("ParseNumber(\"42\") = %v, %v", n, ok)
	}
	if n, ok := Number(3.5).ParseNumber(); !ok || n != 3.5 {
		t.Errorf("ParseNumber(3.5) = %v, %v", n, ok)
	}
	if _, ok := String("nope").ParseNumber(); ok {
		t.Error("non-numeric string parsed")
	}
	if _, ok := Bool(true).ParseNumber(); ok {
		t.Error("bool parsed as number")
	}
}

func TestGetStringRendersAnyType(t *testing.T) {
	s := New()
	s.Set("n", Number(7))
	s.Set("b", Bool(true))
	if got := s.GetString("n"); got != "7" {
		t.Errorf("GetString(n) = %q", got)
	}
	if got := s.GetString("b"); got != "true" {
		t.Errorf("GetString(b) = %q", got)
	}
	if got := s.GetString("missing"); got != "" {
		t.Errorf("GetString(missing) = %q", got)
	}
}
