package chatService

import (
	chatRepository "EcommerceChatbot/internal/api/chat/repository"
	"EcommerceChatbot/pkg/nlp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Outcome string

const (
	OutcomeAnswered     Outcome = "answered"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeNotReady     Outcome = "not_ready"
	OutcomeUnavailable  Outcome = "unavailable"
	OutcomeClarify      Outcome = "clarify"
	OutcomeUnrecognized Outcome = "unrecognized"
)

// Result is a reply together with how it was reached. Every failure mode is
// an Outcome, never an error.
type Result struct {
	Intent  Intent
	Outcome Outcome
	Text    string
}

// Engine answers questions against a dataset repository. It holds no state
// of its own and is safe for concurrent use.
type Engine struct {
	repo  chatRepository.Repository
	rules []Rule
}

func NewEngine(repo chatRepository.Repository) *Engine {
	return &Engine{
		repo:  repo,
		rules: DefaultRules(),
	}
}

func (e *Engine) Classify(text string) Classification {
	_, c, _ := Classify(e.rules, nlp.Normalize(text))
	return c
}

func (e *Engine) Resolve(text string) Result {
	text = nlp.Normalize(text)

	rule, c, ok := Classify(e.rules, text)
	if !ok {
		return help(IntentUnknown)(text)
	}
	if !c.Matched {
		if rule.Fallback == nil {
			return help(rule.Intent)(text)
		}
		return rule.Fallback(text)
	}

	if table, missing := e.repo.MissingTable(rule.Requires...); missing {
		// Once loading has finished an empty table means its load failed.
		if e.repo.Generation() != "" {
			return Result{
				Intent:  rule.Intent,
				Outcome: OutcomeUnavailable,
				Text:    fmt.Sprintf(msgUnavailable, tableLabel(table)),
			}
		}
		return Result{
			Intent:  rule.Intent,
			Outcome: OutcomeNotReady,
			Text:    fmt.Sprintf(msgNotReady, tableLabel(table)),
		}
	}

	return rule.Resolve(e, c.Params)
}

// Answer never returns an empty string.
func (e *Engine) Answer(text string) string {
	return e.Resolve(text).Text
}

func (e *Engine) resolveOrderStatus(p Params) Result {
	order, ok := e.repo.FindOrderByID(p.OrderID)
	if !ok {
		return Result{IntentOrderStatus, OutcomeNotFound, fmt.Sprintf(msgOrderNotFound, p.OrderID)}
	}
	return Result{IntentOrderStatus, OutcomeAnswered, fmt.Sprintf(msgOrderStatus, p.OrderID, order.Status)}
}

func (e *Engine) resolveTopSelling(p Params) Result {
	ranking := e.repo.SalesRanking()
	if p.Count < len(ranking) {
		ranking = ranking[:p.Count]
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgTopSellingHeader, p.Count)

	position := 0
	for _, sales := range ranking {
		product, ok := e.repo.FindProductByID(sales.ProductID)
		if !ok {
			continue
		}
		position++
		fmt.Fprintf(&b, msgTopSellingLine, position, product.Name)
	}

	return Result{IntentTopSelling, OutcomeAnswered, b.String()}
}

func (e *Engine) resolveStockLevel(p Params) Result {
	product, ok := e.repo.FindProductByName(p.Query)
	if !ok && strings.HasSuffix(p.Query, "s") {
		product, ok = e.repo.FindProductByName(strings.TrimSuffix(p.Query, "s"))
	}
	if !ok {
		return Result{IntentStockLevel, OutcomeNotFound, fmt.Sprintf(msgProductNotFound, p.Query)}
	}
	count := e.repo.CountInStock(product.ID)
	return Result{IntentStockLevel, OutcomeAnswered, fmt.Sprintf(msgStockLevel, count, product.Name)}
}

func (e *Engine) resolveProductPrice(p Params) Result {
	product, ok := e.repo.FindProductByName(p.Query)
	if !ok {
		return Result{IntentProductPrice, OutcomeNotFound, fmt.Sprintf(msgProductNotFound, p.Query)}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(product.RetailPrice), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return Result{IntentProductPrice, OutcomeNotFound, fmt.Sprintf(msgPriceUnavailable, product.Name)}
	}
	return Result{IntentProductPrice, OutcomeAnswered, fmt.Sprintf(msgProductPrice, product.Name, price)}
}

func (e *Engine) resolveCountByStatus(p Params) Result {
	count := e.repo.CountOrdersByStatus(p.Query)
	return Result{IntentCountByStatus, OutcomeAnswered, fmt.Sprintf(msgOrdersByStatus, count, p.Query)}
}

func clarify(intent Intent, msg string) func(string) Result {
	return func(string) Result {
		return Result{Intent: intent, Outcome: OutcomeClarify, Text: msg}
	}
}

func help(intent Intent) func(string) Result {
	return func(string) Result {
		return Result{Intent: intent, Outcome: OutcomeUnrecognized, Text: msgHelp}
	}
}
