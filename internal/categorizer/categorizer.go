// Package categorizer maps transaction descriptions onto the fixed spending
// taxonomy via keyword matching. Keywords are loaded from a YAML database
// with a built-in fallback mirroring the original deployment's map.
package categorizer

import (
	"strings"
	"unicode"

	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/models"
)

// defaultCategories is used when no categories.yaml is available. Order
// matters: the first keyword that matches a token wins.
var defaultCategories = []models.CategoryConfig{
	{Name: models.CategoryFood, Keywords: []string{"makan", "warteg"}},
	{Name: models.CategoryShopping, Keywords: []string{"indomaret"}},
	{Name: models.CategoryTransport, Keywords: []string{"bensin", "gojek"}},
	{Name: models.CategoryBills, Keywords: []string{"listrik", "air"}},
}

// Categorizer handles keyword-based classification of descriptions.
type Categorizer struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewCategorizer creates a Categorizer backed by the given store. When the
// store yields nothing (missing file, load error) the built-in keyword map
// is used instead.
func NewCategorizer(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		categories: defaultCategories,
		logger:     logger,
	}

	if store != nil {
		categories, err := store.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load categories, using built-in map")
		} else if len(categories) > 0 {
			c.categories = categories
		}
	}

	return c
}

// Classify tokenizes a description and returns its category label.
func (c *Categorizer) Classify(description string) string {
	return c.ClassifyTokens(Tokenize(description))
}

// ClassifyTokens scans tokens in order and returns the category of the first
// keyword contained in any token. Matching is by substring containment on
// lower-cased text, so "bensinnya" still hits "bensin". Returns the generic
// "lainnya" label when nothing matches.
func (c *Categorizer) ClassifyTokens(tokens []string) string {
	for _, token := range tokens {
		token = strings.ToLower(token)
		for _, categoryConfig := range c.categories {
			for _, keyword := range categoryConfig.Keywords {
				if strings.Contains(token, strings.ToLower(keyword)) {
					c.logger.WithFields(
						logging.Field{Key: logging.FieldKeyword, Value: keyword},
						logging.Field{Key: logging.FieldCategory, Value: categoryConfig.Name},
					).Debug("Token matched category keyword")
					return categoryConfig.Name
				}
			}
		}
	}
	return models.CategoryOther
}

// IsKnown reports whether label is one of the configured category names.
func (c *Categorizer) IsKnown(label string) bool {
	if label == models.CategoryOther {
		return true
	}
	for _, categoryConfig := range c.categories {
		if strings.EqualFold(categoryConfig.Name, label) {
			return true
		}
	}
	return false
}

// Tokenize splits free text into lower-cased word tokens, dropping
// punctuation-only and digit-only runs.
func Tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if isAllDigits(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
