// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

// =============================================================================
// CANNED RESPONSES
// =============================================================================

// Canned response variants for the advice and savings fallbacks. One is
// picked uniformly at random per answer; the random source is injectable
// so tests can pin the choice.
var (
	investmentAdviceResponses = []string{
		"Based on your financial situation, I recommend considering a diversified portfolio that matches your risk tolerance and investment timeline. This might include a mix of stocks, bonds, and other assets.",
		"Investment decisions should be based on your financial goals, risk tolerance, and time horizon. Consider consulting with a financial advisor for personalized advice.",
		"When investing, it's important to diversify your portfolio across different asset classes and sectors to manage risk effectively.",
	}

	stockAdviceResponses = []string{
		"Individual stock selections should be based on thorough research including the company's financials, growth prospects, competitive position, and overall market conditions.",
		"When considering individual stocks, look at factors like P/E ratio, earnings growth, debt levels, competitive advantages, and industry trends.",
		"Rather than focusing on individual stocks, many financial advisors recommend index funds for most investors as they provide diversification and typically have lower fees.",
	}

	savingsResponses = []string{
		"A common financial guideline is to save 15-20% of your income for long-term goals like retirement, while maintaining an emergency fund of 3-6 months of expenses.",
		"Consider following the 50/30/20 rule: 50% of income for needs, 30% for wants, and 20% for savings and debt repayment.",
		"Building an emergency fund should be a priority before making significant investments in the market.",
	}
)

// Fixed disclaimers appended to the advice variants.
const (
	stockAdviceDisclaimer      = "\n\nRemember that past performance is not indicative of future results, and all investments carry risk."
	investmentAdviceDisclaimer = "\n\nIt's important to do your own research or consult with a financial advisor before making investment decisions."
)

// Terminal messages for questions nothing else could answer.
const (
	unknownResponse = "I need more specific information to answer that question. Could you provide more details about your financial situation or clarify what you'd like to know?"

	lowQualityResponse = "Based on the information provided, I'd need more details to give you a helpful answer on this topic. Could you provide more specifics about your financial situation and goals?"
)

// pick returns a uniformly random variant from the set.
func (a *Assistant) pick(variants []string) string {
	return variants[a.rand.Intn(len(variants))]
}
