package chatService

import (
	"EcommerceChatbot/internal/dataset"
	"EcommerceChatbot/pkg/nlp"
	"regexp"
	"strconv"
	"strings"
)

type Intent string

const (
	IntentOrderStatus   Intent = "order_status"
	IntentTopSelling    Intent = "top_selling"
	IntentStockLevel    Intent = "stock_level"
	IntentProductPrice  Intent = "product_price"
	IntentCountByStatus Intent = "count_by_status"
	IntentUnknown       Intent = "unknown"
)

const defaultTopCount = 5

const (
	prefixStockLevel    = "how many"
	prefixProductPrice  = "what is the price of"
	prefixCountByStatus = "how many orders are"
)

// The product phrase is kept whole. The stock resolver retries without a
// trailing plural "s" when the full phrase finds nothing.
var stockPattern = regexp.MustCompile(`^how many (.+?) are (?:in stock|left)`)

// Params holds whatever a rule extracted from the text. Only the fields the
// rule's intent uses are set.
type Params struct {
	OrderID string
	Count   int
	Query   string
}

// Rule is one entry of the ordered classification table. Match decides
// whether the rule owns the text, Extract pulls its parameters, and when
// extraction fails Fallback produces the reply instead of Resolve.
type Rule struct {
	Intent   Intent
	Match    func(text string) bool
	Extract  func(text string) (Params, bool)
	Requires []dataset.TableName
	Resolve  func(e *Engine, p Params) Result
	Fallback func(text string) Result
}

// Classification is the pure part of answering: which rule matched and what
// it extracted.
type Classification struct {
	Intent  Intent
	Params  Params
	Matched bool
}

// DefaultRules lists the rules in priority order. The first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent:   IntentOrderStatus,
			Match:    func(text string) bool { return strings.Contains(text, "status of order") },
			Extract:  extractOrderID,
			Requires: []dataset.TableName{dataset.TableOrders},
			Resolve:  (*Engine).resolveOrderStatus,
			Fallback: clarify(IntentOrderStatus, msgClarifyOrderID),
		},
		{
			// Both words anywhere, in any order.
			Intent:   IntentTopSelling,
			Match:    func(text string) bool { return strings.Contains(text, "top") && strings.Contains(text, "selling") },
			Extract:  extractTopCount,
			Requires: []dataset.TableName{dataset.TableOrderItems, dataset.TableProducts},
			Resolve:  (*Engine).resolveTopSelling,
		},
		{
			Intent:   IntentStockLevel,
			Match:    matchStockLevel,
			Extract:  extractStockQuery,
			Requires: []dataset.TableName{dataset.TableProducts, dataset.TableInventoryItems},
			Resolve:  (*Engine).resolveStockLevel,
			Fallback: help(IntentStockLevel),
		},
		{
			Intent:   IntentProductPrice,
			Match:    func(text string) bool { return strings.HasPrefix(text, prefixProductPrice) },
			Extract:  extractAfter(prefixProductPrice),
			Requires: []dataset.TableName{dataset.TableProducts},
			Resolve:  (*Engine).resolveProductPrice,
			Fallback: clarify(IntentProductPrice, msgClarifyProduct),
		},
		{
			Intent:   IntentCountByStatus,
			Match:    func(text string) bool { return strings.HasPrefix(text, prefixCountByStatus) },
			Extract:  extractAfter(prefixCountByStatus),
			Requires: []dataset.TableName{dataset.TableOrders},
			Resolve:  (*Engine).resolveCountByStatus,
			Fallback: clarify(IntentCountByStatus, msgClarifyStatus),
		},
	}
}

// Classify runs rules against already normalised text. It returns the
// matching rule, or false when the text falls through to the help message.
func Classify(rules []Rule, text string) (Rule, Classification, bool) {
	for _, rule := range rules {
		if !rule.Match(text) {
			continue
		}
		params, ok := rule.Extract(text)
		return rule, Classification{Intent: rule.Intent, Params: params, Matched: ok}, true
	}
	return Rule{}, Classification{Intent: IntentUnknown}, false
}

func matchStockLevel(text string) bool {
	if !strings.HasPrefix(text, prefixStockLevel) {
		return false
	}
	return strings.Contains(text, "in stock") || strings.Contains(text, "left")
}

func extractOrderID(text string) (Params, bool) {
	id, ok := nlp.FirstNumber(text)
	return Params{OrderID: id}, ok
}

// extractTopCount never fails. Missing or oversized numbers use the default.
func extractTopCount(text string) (Params, bool) {
	count := defaultTopCount
	if n, ok := nlp.FirstNumber(text); ok {
		if v, err := strconv.Atoi(n); err == nil {
			count = v
		}
	}
	return Params{Count: count}, true
}

func extractStockQuery(text string) (Params, bool) {
	m := stockPattern.FindStringSubmatch(text)
	if m == nil {
		return Params{}, false
	}
	query := strings.TrimSpace(m[1])
	return Params{Query: query}, query != ""
}

func extractAfter(prefix string) func(string) (Params, bool) {
	return func(text string) (Params, bool) {
		rest, ok := nlp.After(text, prefix)
		if !ok {
			return Params{}, false
		}
		query := nlp.TrimTrailingPunct(rest)
		return Params{Query: query}, query != ""
	}
}
