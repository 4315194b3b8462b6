// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package finance implements the closed-form financial math used by the
// assistant: amortized loan payments, compound-growth future values, and the
// year-by-year growth schedule that backs the investment chart.
//
// # Key Functions
//
//   - LoanPayment: fixed monthly payment for a fully amortized loan
//   - FutureValue: compound growth with optional monthly contributions
//   - GrowthSchedule: per-year principal/contributions/growth breakdown
//
// All functions are pure and deterministic. Rates are expressed as annual
// percentages (4.5 means 4.5%), never as decimals, matching the way rates
// are extracted from user questions.
package finance
