// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"strings"

	"github.com/jeranaias/finassist-tui/internal/extract"
	"github.com/jeranaias/finassist-tui/internal/facts"
)

// =============================================================================
// INCOME RESOLUTION
// =============================================================================

// resolveMonthlyIncome scans the fact store for an income or salary fact and
// normalizes it to a monthly figure for the debt-to-income check.
//
// Two disambiguation steps, in order:
//  1. a value mentioning "year"/"annual" is divided by 12;
//  2. a value over 50,000 with no "month" mention is ASSUMED annual and
//     divided by 12. This second step is a heuristic guess, not a financial
//     rule: nobody labels their income, and $80,000 is far more plausible as
//     a salary than as a monthly paycheck.
func resolveMonthlyIncome(store facts.Store) (float64, bool) {
	for _, key := range store.Keys() {
		lower := strings.ToLower(key)
		if !strings.Contains(lower, "income") && !strings.Contains(lower, "salary") {
			continue
		}

		value, _ := store.Get(key)
		n, ok := extract.FactNumber(value)
		if !ok {
			continue
		}

		lowerValue := strings.ToLower(value)
		if strings.Contains(lowerValue, "year") || strings.Contains(lowerValue, "annual") {
			n /= 12
		}
		if n > 50000 && !strings.Contains(lowerValue, "month") {
			n /= 12
		}
		return n, true
	}
	return 0, false
}

// rawIncome returns the first income/salary fact's numeric value with no
// monthly/annual normalization. The budget split deliberately takes the
// stored figure at face value.
func rawIncome(store facts.Store) (float64, bool) {
	for _, key := range store.Keys() {
		lower := strings.ToLower(key)
		if !strings.Contains(lower, "income") && !strings.Contains(lower, "salary") {
			continue
		}

		value, _ := store.Get(key)
		if n, ok := extract.FactNumber(value); ok {
			return n, true
		}
	}
	return 0, false
}

// hasIncomeFact reports whether any fact key mentions income.
func hasIncomeFact(store facts.Store) bool {
	for _, key := range store.Keys() {
		if strings.Contains(strings.ToLower(key), "income") {
			return true
		}
	}
	return false
}

// findIncomeFact returns the first fact whose key contains any income
// keyword, original spelling preserved.
func findIncomeFact(store facts.Store) (key, value string, ok bool) {
	for _, k := range store.Keys() {
		if containsAny(strings.ToLower(k), incomeKeywords) {
			v, _ := store.Get(k)
			return k, v, true
		}
	}
	return "", "", false
}
