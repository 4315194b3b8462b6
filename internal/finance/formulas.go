// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package finance

import "math"

// =============================================================================
// LOAN AMORTIZATION
// =============================================================================

// LoanPayment returns the fixed monthly payment for a fully amortized loan.
//
// principal is the loan amount, annualRatePct the annual interest rate as a
// percentage (4.5 means 4.5%), and termMonths the loan term in months.
//
// Uses the standard amortization formula:
//
//	payment = P * r(1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate. At 0% interest the formula divides by zero,
// so the payment degenerates to straight principal/termMonths.
func LoanPayment(principal, annualRatePct float64, termMonths int) float64 {
	n := float64(termMonths)
	r := annualRatePct / 100 / 12

	if r == 0 {
		return principal / n
	}

	factor := math.Pow(1+r, n)
	return principal * (r * factor) / (factor - 1)
}

// =============================================================================
// COMPOUND GROWTH
// =============================================================================

// FutureValue returns the projected value of an investment after termYears
// of monthly compounding at annualRatePct, with an optional fixed monthly
// contribution added at each period.
//
// With contributions the future value is:
//
//	FV = P(1+r)^n + c * ((1+r)^n - 1) / r
//
// The contribution annuity term is skipped entirely at 0% (it reduces to
// simple accumulation, and dividing by r would blow up).
func FutureValue(principal, annualRatePct float64, termYears int, monthlyContribution float64) float64 {
	months := float64(termYears * 12)
	r := annualRatePct / 100 / 12

	if r == 0 {
		return principal + monthlyContribution*months
	}

	factor := math.Pow(1+r, months)
	fv := principal * factor
	if monthlyContribution > 0 {
		fv += monthlyContribution * (factor - 1) / r
	}
	return fv
}

// =============================================================================
// GROWTH SCHEDULE
// =============================================================================

// YearRow is one year of an investment growth schedule. Total always equals
// Principal + Contributions + Growth.
type YearRow struct {
	Year          int
	Principal     float64
	Contributions float64
	Growth        float64
	Total         float64
}

// GrowthSchedule builds the year-by-year breakdown used for charting.
//
// Year 0 is the initial state: {principal, 0, 0, principal}. Each later
// year accrues monthlyContribution*12 of contributions and approximates
// growth as (previousTotal + yearContribution/2) * annualRate, the mid-year
// convention: contributions arrive spread across the year, so on average
// half of them earn that year's return.
//
// This is deliberately NOT the exact monthly compounding of FutureValue.
// The chart narrative shows both figures side by side, so the approximation
// must stay as-is rather than being "fixed" to match.
func GrowthSchedule(principal, annualRatePct float64, termYears int, monthlyContribution float64) []YearRow {
	rows := make([]YearRow, 0, termYears+1)
	rows = append(rows, YearRow{
		Year:      0,
		Principal: principal,
		Total:     principal,
	})

	contributions := 0.0
	growth := 0.0
	for year := 1; year <= termYears; year++ {
		prevTotal := rows[year-1].Total
		yearContribution := monthlyContribution * 12
		yearGrowth := (prevTotal + yearContribution/2) * (annualRatePct / 100)

		contributions += yearContribution
		growth += yearGrowth

		rows = append(rows, YearRow{
			Year:          year,
			Principal:     principal,
			Contributions: contributions,
			Growth:        growth,
			Total:         principal + contributions + growth,
		})
	}

	return rows
}
