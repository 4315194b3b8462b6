// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements the question-answering core: a fixed-priority
// cascade of rules over free-text financial questions.
//
// Each rule pairs a cheap keyword/pattern gate with a handler that extracts
// parameters and composes an answer. Rules are evaluated in order and the
// first one to produce an answer wins; missing parameters make a rule
// decline rather than error, so a half-specified question falls through to
// the next rule and, ultimately, to the fallback. The worst case is always
// a textual message, never a failure surfaced to the caller.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jeranaias/finassist-tui/internal/extract"
	"github.com/jeranaias/finassist-tui/internal/facts"
	"github.com/jeranaias/finassist-tui/internal/finance"
	"github.com/jeranaias/finassist-tui/internal/market"
)

// =============================================================================
// COLLABORATOR CONTRACTS
// =============================================================================

// QuoteProvider fetches the latest price and trailing history for a ticker.
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string) (*market.Quote, error)
}

// Generator produces free-form text from a prompt. Optional; when absent the
// assistant answers unmatched questions with a fixed message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// ANSWER
// =============================================================================

// Answer is one turn's response: the message text plus any chart series the
// caller may render alongside it.
type Answer struct {
	Text string

	// Growth is the year-by-year schedule behind an investment answer.
	Growth []finance.YearRow

	// Quote carries the price history behind a stock answer.
	Quote *market.Quote
}

// =============================================================================
// ASSISTANT
// =============================================================================

// Config holds the assistant's collaborators. Zero fields get defaults.
type Config struct {
	// Facts is the session fact store (default: fresh in-memory store)
	Facts facts.Store

	// Market resolves stock quotes. Nil disables the price branch.
	Market QuoteProvider

	// Generator answers questions no deterministic branch matched.
	// Nil disables the generative fallback.
	Generator Generator

	// Rand drives canned-response selection (default: time-seeded)
	Rand *rand.Rand

	// DefaultTermYears is used when a question omits the term (default: 30)
	DefaultTermYears int
}

// Assistant answers financial questions for a single session. Not safe for
// concurrent use: each session asks at most one question at a time.
type Assistant struct {
	facts     facts.Store
	market    QuoteProvider
	generator Generator
	rand      *rand.Rand
	termYears int
	rules     []rule
}

// rule is one priority level of the cascade. A handler returns ok=false to
// decline the question and let the next rule try.
type rule struct {
	name   string
	handle func(ctx context.Context, q *query) (Answer, bool)
}

// query carries a question through the cascade with its lower-cased form
// computed once.
type query struct {
	raw   string
	lower string
}

// New creates an assistant with the given collaborators.
func New(cfg Config) *Assistant {
	if cfg.Facts == nil {
		cfg.Facts = facts.NewMemoryStore()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.DefaultTermYears == 0 {
		cfg.DefaultTermYears = 30
	}

	a := &Assistant{
		facts:     cfg.Facts,
		market:    cfg.Market,
		generator: cfg.Generator,
		rand:      cfg.Rand,
		termYears: cfg.DefaultTermYears,
	}

	a.rules = []rule{
		{name: "stored-fact", handle: a.handleFactQuery},
		{name: "stock-price", handle: a.handleStockPrice},
		{name: "loan-payment", handle: a.handleLoan},
		{name: "investment-growth", handle: a.handleInvestment},
		{name: "budget-rule", handle: a.handleBudget},
		{name: "investment-advice", handle: a.handleAdvice},
		{name: "savings", handle: a.handleSavings},
	}
	return a
}

// Facts exposes the session fact store for the set/show surfaces.
func (a *Assistant) Facts() facts.Store {
	return a.facts
}

// Ask answers one question. The first matching rule wins; when none match,
// the fallback (generative if configured) produces the answer.
func (a *Assistant) Ask(ctx context.Context, question string) Answer {
	q := &query{raw: question, lower: strings.ToLower(question)}

	for _, r := range a.rules {
		if answer, ok := r.handle(ctx, q); ok {
			return answer
		}
	}
	return a.fallback(ctx, q)
}

// =============================================================================
// RULE 1: STORED-FACT QUERY
// =============================================================================

// handleFactQuery answers questions about facts the user has stored.
//
// A question that names a fact category but also carries everything needed
// for a calculation ("how much will I pay for a $250,000 loan at 4.5%...")
// is deferred to the calculation rules, whether or not the fact is stored:
// answering the income query there would shadow the loan breakdown the
// question is actually asking for, and the loan rule folds the stored
// income into its debt-to-income assessment anyway.
func (a *Assistant) handleFactQuery(_ context.Context, q *query) (Answer, bool) {
	if !containsAny(q.lower, questionWords) {
		return Answer{}, false
	}
	if a.hasCalculationSignal(q) {
		return Answer{}, false
	}

	if containsAny(q.lower, incomeKeywords) {
		return a.answerIncomeQuery(q)
	}

	for _, dataType := range dataTypes {
		if !strings.Contains(q.lower, dataType) {
			continue
		}
		if key, value, ok := a.facts.Match(dataType); ok {
			return Answer{Text: fmt.Sprintf("Your %s is %s.", key, value)}, true
		}
		return Answer{Text: fmt.Sprintf("I don't have any %s information stored for you yet. You can set it using 'set %s: $X'.", dataType, dataType)}, true
	}

	return Answer{}, false
}

// answerIncomeQuery composes an income answer, converting between monthly
// and annual figures as the question requests.
func (a *Assistant) answerIncomeQuery(q *query) (Answer, bool) {
	key, value, found := findIncomeFact(a.facts)
	if !found {
		return Answer{Text: "I don't have any income information stored for you yet. You can set it using 'set monthly_income: $X'."}, true
	}

	annualRequest := isAnnualRequest(q.lower)
	lowerValue := strings.ToLower(value)
	monthlyData := strings.Contains(strings.ToLower(key), "month") || strings.Contains(lowerValue, "month")

	n, ok := extract.FactNumber(value)
	if !ok {
		return Answer{Text: fmt.Sprintf("Your %s is %s.", key, value)}, true
	}

	switch {
	case annualRequest && monthlyData:
		return Answer{Text: fmt.Sprintf("Based on your monthly %s of %s, you earn %s per year.", key, value, moneyGrouped(n*12))}, true
	case !annualRequest && !monthlyData && strings.Contains(lowerValue, "year"):
		return Answer{Text: fmt.Sprintf("Based on your annual %s of %s, you earn %s per month.", key, value, moneyGrouped(n/12))}, true
	case annualRequest:
		return Answer{Text: fmt.Sprintf("Your annual %s is %s.", key, value)}, true
	default:
		return Answer{Text: fmt.Sprintf("Your %s is %s.", key, value)}, true
	}
}

// hasCalculationSignal reports whether a later rule could compute a concrete
// answer from this question.
func (a *Assistant) hasCalculationSignal(q *query) bool {
	if containsAny(q.lower, loanKeywords) && containsAny(q.lower, paymentKeywords) {
		if _, ok := extract.LoanAmount(q.raw); ok {
			if _, ok := extract.Rate(q.raw); ok {
				return true
			}
		}
	}
	if containsAny(q.lower, investmentKeywords) {
		if _, ok := extract.Amount(q.raw); ok {
			if _, ok := extract.Rate(q.raw); ok {
				return true
			}
		}
	}
	if containsAny(q.lower, budgetKeywords) && isFiftyThirtyTwenty(q.raw) {
		return true
	}
	return false
}

// =============================================================================
// RULE 2: STOCK PRICE
// =============================================================================

// handleStockPrice looks up a quote when the question names a ticker with
// price intent. A lookup failure is terminal for the turn: the error text IS
// the answer, later rules are not tried.
func (a *Assistant) handleStockPrice(ctx context.Context, q *query) (Answer, bool) {
	if a.market == nil {
		return Answer{}, false
	}
	ticker, ok := extract.Ticker(q.raw)
	if !ok || !containsAny(q.lower, priceKeywords) {
		return Answer{}, false
	}

	quote, err := a.market.Quote(ctx, ticker)
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			return Answer{Text: fmt.Sprintf("Could not find data for ticker symbol %s.", ticker)}, true
		}
		return Answer{Text: fmt.Sprintf("Error fetching data for %s: %v", ticker, err)}, true
	}

	// Keep the latest price around as a fact for later questions.
	a.facts.Set("stock_"+ticker, fmt.Sprintf("$%.2f", quote.Price))

	return Answer{
		Text:  fmt.Sprintf("The latest price of %s (%s) is $%.2f", quote.Name, ticker, quote.Price),
		Quote: quote,
	}, true
}

// =============================================================================
// RULE 3: LOAN PAYMENT
// =============================================================================

func (a *Assistant) handleLoan(_ context.Context, q *query) (Answer, bool) {
	if !containsAny(q.lower, loanKeywords) {
		return Answer{}, false
	}

	principal, haveAmount := extract.LoanAmount(q.raw)
	rate, haveRate := extract.Rate(q.raw)
	if !haveAmount || !haveRate || !containsAny(q.lower, paymentKeywords) {
		return Answer{}, false
	}

	termYears := a.termYears
	if years, ok := extract.TermYears(q.raw); ok {
		termYears = years
	}

	payment := finance.LoanPayment(principal, rate, termYears*12)

	// The affordability note only appears when the question brings income up
	// or an income fact is already stored.
	income := 0.0
	hasIncome := false
	incomeMentioned := strings.Contains(q.lower, "income") ||
		strings.Contains(q.lower, "salary") ||
		strings.Contains(q.lower, "earn")
	if incomeMentioned || hasIncomeFact(a.facts) {
		income, hasIncome = resolveMonthlyIncome(a.facts)
	}

	return Answer{Text: composeLoanResponse(termYears, principal, rate, payment, income, hasIncome)}, true
}

// =============================================================================
// RULE 4: INVESTMENT GROWTH
// =============================================================================

func (a *Assistant) handleInvestment(_ context.Context, q *query) (Answer, bool) {
	if !containsAny(q.lower, investmentKeywords) {
		return Answer{}, false
	}

	// Broad matching on purpose: the first bare amount and first rate
	// anywhere in the question qualify.
	principal, haveAmount := extract.Amount(q.raw)
	rate, haveRate := extract.Rate(q.raw)
	if !haveAmount || !haveRate {
		return Answer{}, false
	}

	years := a.termYears
	if extracted, ok := extract.TermYears(q.raw); ok {
		years = extracted
	}

	contribution := 0.0
	if c, ok := extract.MonthlyContribution(q.raw); ok {
		contribution = c
	}

	futureValue := finance.FutureValue(principal, rate, years, contribution)

	return Answer{
		Text:   composeInvestmentResponse(principal, rate, years, contribution, futureValue),
		Growth: finance.GrowthSchedule(principal, rate, years, contribution),
	}, true
}

// =============================================================================
// RULE 5: BUDGET (50/30/20)
// =============================================================================

func (a *Assistant) handleBudget(_ context.Context, q *query) (Answer, bool) {
	if !containsAny(q.lower, budgetKeywords) || !isFiftyThirtyTwenty(q.raw) {
		return Answer{}, false
	}

	income, hasIncome := rawIncome(a.facts)
	return Answer{Text: composeBudgetResponse(income, hasIncome)}, true
}

// =============================================================================
// RULE 6: INVESTMENT ADVICE
// =============================================================================

func (a *Assistant) handleAdvice(_ context.Context, q *query) (Answer, bool) {
	if !isAdviceQuestion(q.lower) {
		return Answer{}, false
	}

	if _, ok := extract.Ticker(q.raw); ok {
		return Answer{Text: a.pick(stockAdviceResponses) + stockAdviceDisclaimer}, true
	}
	return Answer{Text: a.pick(investmentAdviceResponses) + investmentAdviceDisclaimer}, true
}

// =============================================================================
// RULE 7: SAVINGS
// =============================================================================

func (a *Assistant) handleSavings(_ context.Context, q *query) (Answer, bool) {
	if !containsAny(q.lower, savingsKeywords) {
		return Answer{}, false
	}
	return Answer{Text: a.pick(savingsResponses)}, true
}

// =============================================================================
// FALLBACK
// =============================================================================

// fallback answers questions no rule claimed. With a generator configured it
// tries a generated answer first, rejecting low-quality output; without one
// (or after rejection with no better category) the fixed message is the
// answer.
func (a *Assistant) fallback(ctx context.Context, q *query) Answer {
	if a.generator == nil {
		return Answer{Text: unknownResponse}
	}

	if text, err := a.generator.Generate(ctx, a.buildPrompt(q.raw)); err == nil && !lowQuality(text, q.raw) {
		return Answer{Text: text}
	}

	switch {
	case strings.Contains(q.lower, "invest") || strings.Contains(q.lower, "stock"):
		return Answer{Text: a.pick(investmentAdviceResponses)}
	case strings.Contains(q.lower, "save") || strings.Contains(q.lower, "saving"):
		return Answer{Text: a.pick(savingsResponses)}
	default:
		return Answer{Text: lowQualityResponse}
	}
}

// lowQuality rejects generated output that is too short, echoes the
// question, or is wholly contained in it.
func lowQuality(response, question string) bool {
	return len(response) < 30 ||
		response == question ||
		strings.Contains(strings.ToLower(question), strings.ToLower(response))
}

// buildPrompt assembles the generative prompt with the stored facts as
// context.
func (a *Assistant) buildPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Task: You are a helpful financial assistant. Based on the financial information below, provide a thoughtful, accurate, and helpful response to the user's question.\n\n")
	b.WriteString("Financial Data:\n")
	b.WriteString(facts.Render(a.facts))
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nImportant:\n")
	b.WriteString("1. Provide specific, practical advice based on the user's financial data\n")
	b.WriteString("2. Do not make up information that is not in the data\n")
	b.WriteString("3. If you cannot answer based on the available data, say so clearly\n")
	b.WriteString("4. Never recommend specific stocks or investments\n")
	b.WriteString("5. Emphasize long-term financial principles like diversification and risk management\n\n")
	b.WriteString("Your response:\n")
	return b.String()
}
