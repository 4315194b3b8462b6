// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"regexp"
	"strings"
)

// =============================================================================
// INTENT KEYWORDS
// =============================================================================

// Keyword sets gating each branch of the cascade. Matching is plain
// substring containment over the lower-cased question, so "payment" is
// also hit by "pay" and "savings" by "saving". That looseness is part of
// the contract.
var (
	loanKeywords       = []string{"loan", "borrow", "mortgage", "repay", "payment"}
	paymentKeywords    = []string{"payment", "pay", "repay"}
	investmentKeywords = []string{"invest", "return", "grow", "compound", "interest"}
	budgetKeywords     = []string{"budget", "save", "saving", "expense", "spend"}
	savingsKeywords    = []string{"save", "saving", "budget", "spend"}
	priceKeywords      = []string{"price", "value", "quote", "worth", "get stock"}

	// Stored-fact queries: an information-seeking phrase plus a fact category.
	questionWords  = []string{"what", "how much", "tell me", "show", "display", "reveal"}
	incomeKeywords = []string{"income", "salary", "earn", "make", "pay", "earning", "wage", "compensation"}
	dataTypes      = []string{"savings", "debt", "mortgage", "investment", "budget", "expense", "house", "home", "property"}
)

// advicePatterns detect questions asking for investment advice rather than
// a calculation.
var advicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(should|could|would) (i|me) (buy|sell|invest)`),
	regexp.MustCompile(`(is it|would it be) (worth|good|advisable) (to buy|to invest|investing)`),
	regexp.MustCompile(`(what|which) (stocks|investments|etfs|funds) (should|could|would) (i|me)`),
	regexp.MustCompile(`(recommend|suggestion|advice) (for|on) (investing|stocks|funds)`),
}

// =============================================================================
// PREDICATES
// =============================================================================

func containsAny(lower string, words []string) bool {
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// isAdviceQuestion reports whether the question matches one of the
// investment-advice phrasings.
func isAdviceQuestion(lower string) bool {
	for _, pattern := range advicePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// isFiftyThirtyTwenty reports whether the question literally names the
// 50/30/20 rule's three shares.
func isFiftyThirtyTwenty(question string) bool {
	return strings.Contains(question, "50") &&
		strings.Contains(question, "30") &&
		strings.Contains(question, "20")
}

// isAnnualRequest reports whether the question asks for a yearly figure.
func isAnnualRequest(lower string) bool {
	return containsAny(lower, []string{"year", "annual", "annually"})
}
