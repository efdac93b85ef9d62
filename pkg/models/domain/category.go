package domain

import "strings"

// CategoryRule matches raw category keys against one canonical expense head.
// Match is a substring compared against the normalized key.
type CategoryRule struct {
	Name  string
	Match string
}

// CategoryList is the configured set of expense heads counted into outflow
// totals. Categories outside the list stay visible but never enter totals.
type CategoryList struct {
	Version string
	Rules   []CategoryRule
}

// DefaultCategories returns the expense heads tracked by the finance team.
func DefaultCategories() CategoryList {
	heads := []string{
		"salary",
		"legal and professional",
		"rent",
		"hotel & travel expenses",
		"marketing exp.",
		"misc expenses",
		"investments",
		"capex",
	}

	rules := make([]CategoryRule, 0, len(heads))
	for _, head := range heads {
		rules = append(rules, CategoryRule{Name: head, Match: head})
	}
	return CategoryList{Version: "2025-04", Rules: rules}
}

// Matches reports whether a normalized category key belongs to the list.
func (cl CategoryList) Matches(key string) bool {
	for _, rule := range cl.Rules {
		if strings.Contains(key, rule.Match) {
			return true
		}
	}
	return false
}
