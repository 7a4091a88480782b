package generator

import "strings"

// CategoryMiscellaneous is the fallback when no classification rule matches.
const CategoryMiscellaneous = "Miscellaneous"

// categoryRules map description keywords to category labels. Matching is
// case-insensitive substring, first rule wins; the order is part of the
// classification contract and must not be rearranged.
var categoryRules = []struct {
	keywords []string
	category string
}{
	{[]string{"withdrawal"}, "Cash"},
	{[]string{"deposit"}, "Income"},
	{[]string{"interest"}, "Interest"},
	{[]string{"transfer"}, "Transfer"},
	{[]string{"bill payment"}, "Bill Payment"},
	{[]string{"restaurant", "starbucks"}, "Dining"},
	{[]string{"amazon", "walmart", "target"}, "Shopping"},
	{[]string{"netflix"}, "Entertainment"},
	{[]string{"uber"}, "Transportation"},
	{[]string{"gas"}, "Auto & Transport"},
	{[]string{"grocery"}, "Groceries"},
}

// Categorize derives the category label for a transaction description.
func Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryMiscellaneous
}
