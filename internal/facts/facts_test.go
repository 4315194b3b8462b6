// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package facts

import (
	"errors"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Set("monthly_income", "$5000"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok := s.Get("monthly_income")
	if !ok || value != "$5000" {
		t.Errorf("Get = (%q, %v), want ($5000, true)", value, ok)
	}

	// Case-insensitive exact lookup
	value, ok = s.Get("Monthly_Income")
	if !ok || value != "$5000" {
		t.Errorf("case-insensitive Get = (%q, %v), want ($5000, true)", value, ok)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	s.Set("savings", "$1000")
	s.Set("Savings", "$2000")

	value, _ := s.Get("savings")
	if value != "$2000" {
		t.Errorf("value = %q, want $2000", value)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 (re-set must not duplicate)", s.Len())
	}
}

func TestInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Set("b_fact", "2")
	s.Set("a_fact", "1")
	s.Set("c_fact", "3")

	keys := s.Keys()
	want := []string{"b_fact", "a_fact", "c_fact"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestMatchSubstring(t *testing.T) {
	s := NewMemoryStore()
	s.Set("Monthly Salary", "$4,200")
	s.Set("stock_AAPL", "$198.11")

	key, value, ok := s.Match("salary")
	if !ok || key != "Monthly Salary" || value != "$4,200" {
		t.Errorf("Match(salary) = (%q, %q, %v)", key, value, ok)
	}

	if _, _, ok := s.Match("mortgage"); ok {
		t.Error("Match(mortgage) found a fact in a store without one")
	}
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()
	s.Set("income", "$5000")
	s.Set("debt", "$300")

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
	if _, ok := s.Get("income"); ok {
		t.Error("Get found a fact after Clear")
	}
}

// =============================================================================
// SET COMMAND PARSING
// =============================================================================

func TestParseSetCommand(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"simple", "monthly_income: $5000", "monthly_income", "$5000", false},
		{"whitespace trimmed", "  savings :  $12,000  ", "savings", "$12,000", false},
		{"value with colon", "note: ratio: 2:1", "note", "ratio: 2:1", false},
		{"empty value", "debt:", "debt", "", false},
		{"no colon", "monthly_income $5000", "", "", true},
		{"only colon no key", ": $5000", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, value, err := ParseSetCommand(tc.body)
			if tc.wantErr {
				if !errors.Is(err, ErrBadSetCommand) {
					t.Errorf("err = %v, want ErrBadSetCommand", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != tc.wantKey || value != tc.wantValue {
				t.Errorf("ParseSetCommand(%q) = (%q, %q), want (%q, %q)",
					tc.body, key, value, tc.wantKey, tc.wantValue)
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := NewMemoryStore()
	s.Set("income", "$5000")
	s.Set("debt", "$300")

	got := Render(s)
	want := "- income: $5000\n- debt: $300\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
