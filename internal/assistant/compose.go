// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// MONEY FORMATTING
// =============================================================================

// moneyPrinter renders grouped dollar figures ("$250,000.00").
var moneyPrinter = message.NewPrinter(language.English)

// moneyGrouped formats a dollar amount with thousands separators. Used for
// principals and totals, where the grouping carries real information.
func moneyGrouped(v float64) string {
	return "$" + moneyPrinter.Sprintf("%.2f", v)
}

// money formats a dollar amount without grouping. Used for monthly figures,
// which rarely reach five digits.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatRate renders a rate with no trailing zeros (4.5 -> "4.5", 7 -> "7").
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// =============================================================================
// ANSWER COMPOSITION
// =============================================================================

// composeLoanResponse renders the amortization breakdown, with an optional
// debt-to-income assessment when a monthly income is known.
//
// The ratio bands are strict greater-than on both edges: exactly 36% falls
// in the middle band and exactly 28% counts as affordable. The ratio is
// rounded to the tenth that the message prints, so a computed
// 28.000000000000004 lands on the boundary instead of above it.
func composeLoanResponse(termYears int, principal, rate, payment, income float64, hasIncome bool) string {
	total := payment * float64(termYears) * 12

	var b strings.Builder
	fmt.Fprintf(&b, "For a %d-year loan of %s at %s%% interest rate:\n\n", termYears, moneyGrouped(principal), formatRate(rate))
	fmt.Fprintf(&b, "• Monthly payment: %s\n", money(payment))
	fmt.Fprintf(&b, "• Total payment over %d years: %s\n", termYears, moneyGrouped(total))
	fmt.Fprintf(&b, "• Total interest paid: %s\n", moneyGrouped(total-principal))

	if hasIncome && income > 0 {
		ratio := math.Round(payment/income*100*10) / 10
		fmt.Fprintf(&b, "\nBased on your monthly income of %s, this loan payment would be %.1f%% of your income. ", moneyGrouped(income), ratio)

		switch {
		case ratio > 36:
			b.WriteString("This is higher than the recommended 36% debt-to-income ratio, which may make it difficult to qualify for this loan.")
		case ratio > 28:
			b.WriteString("This is within the maximum recommended 36% debt-to-income ratio, but higher than the ideal 28% for housing expenses.")
		default:
			b.WriteString("This is below the recommended 28% of income for housing expenses, which is generally considered affordable.")
		}
	}
	return b.String()
}

// composeInvestmentResponse renders the future-value breakdown.
func composeInvestmentResponse(principal, rate float64, years int, contribution, futureValue float64) string {
	totalContributions := contribution * float64(years) * 12

	var b strings.Builder
	fmt.Fprintf(&b, "If you invest %s", moneyGrouped(principal))
	if contribution > 0 {
		fmt.Fprintf(&b, " with a monthly contribution of %s", money(contribution))
	}
	fmt.Fprintf(&b, " at %s%% annual return for %d years:\n\n", formatRate(rate), years)
	fmt.Fprintf(&b, "• Future value: %s\n", moneyGrouped(futureValue))
	fmt.Fprintf(&b, "• Total growth: %s\n", moneyGrouped(futureValue-principal-totalContributions))

	if contribution > 0 {
		fmt.Fprintf(&b, "• Total contributions: %s\n", moneyGrouped(totalContributions))
		fmt.Fprintf(&b, "• Initial investment: %s\n", moneyGrouped(principal))
	}
	return b.String()
}

// composeBudgetResponse renders the 50/30/20 rule, with concrete splits
// when an income figure is available.
func composeBudgetResponse(income float64, hasIncome bool) string {
	var b strings.Builder
	b.WriteString("The 50/30/20 budgeting rule suggests dividing your after-tax income as follows:\n\n")
	b.WriteString("• 50% for needs (housing, food, utilities, transportation, etc.)\n")
	b.WriteString("• 30% for wants (entertainment, dining out, hobbies, etc.)\n")
	b.WriteString("• 20% for savings and debt repayment\n\n")

	if hasIncome && income > 0 {
		fmt.Fprintf(&b, "Based on your monthly income of %s:\n\n", moneyGrouped(income))
		fmt.Fprintf(&b, "• Needs (50%%): %s\n", moneyGrouped(income*0.5))
		fmt.Fprintf(&b, "• Wants (30%%): %s\n", moneyGrouped(income*0.3))
		fmt.Fprintf(&b, "• Savings (20%%): %s", moneyGrouped(income*0.2))
	}
	return b.String()
}
