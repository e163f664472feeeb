package schemarules

// DefaultRules returns the built-in rule set in application order.
func DefaultRules() []Rule {
	return []Rule{
		RequiredRule{},
		NotEmptyRule{},
		LengthRule{},
		PatternRule{},
		ComparisonRule{},
		BetweenRule{},
	}
}

// mergeRules overlays overrides on defaults keyed by name. An override named
// like a default replaces it in place; new names are appended in the order
// given. The result never holds two rules with the same name.
func mergeRules(defaults, overrides []Rule) []Rule {
	merged := make([]Rule, len(defaults), len(defaults)+len(overrides))
	copy(merged, defaults)
	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Name() == o.Name() {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return merged
}
