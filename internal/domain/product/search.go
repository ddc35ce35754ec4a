package product

import (
	"strconv"
	"strings"
)

var stopWords = map[string]struct{}{
	"under":  {},
	"over":   {},
	"below":  {},
	"above":  {},
	"around": {},
	"the":    {},
	"a":      {},
	"an":     {},
}

var currencySymbols = []string{"$", "₹", "€", "£"}

// Tokenize turns a free-text query into search terms.
// Stop-words, currency amounts and bare numbers are dropped; when nothing is left
// the whole normalized query becomes the only term. An empty query yields no terms.
func Tokenize(query string) []string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if isNoise(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return []string{normalized}
	}
	return tokens
}

func isNoise(tok string) bool {
	if _, ok := stopWords[tok]; ok {
		return true
	}
	for _, sym := range currencySymbols {
		if strings.HasPrefix(tok, sym) {
			return true
		}
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// Matches reports whether any token is a substring of the product's name, brand, category or description.
func (p Product) Matches(tokens []string) bool {
	text := p.searchText()
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// Filter keeps the products matching query, preserving their order.
func Filter(products []Product, query string) []Product {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Product{}
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Matches(tokens) {
			matched = append(matched, p)
		}
	}
	return matched
}
