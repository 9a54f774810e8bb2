package ventilation

import "github.com/abhisek/ventctl/internal/fuzzy"

// ruleTable[t][h] is the fan speed term for temperature term t and
// humidity term h, both indexed by TermNames.
var ruleTable = [5][5]string{
	/* very_low  */ {VeryLow, VeryLow, Low, High, High},
	/* low       */ {VeryLow, Low, Low, Medium, High},
	/* medium    */ {Low, Low, Medium, High, High},
	/* high      */ {High, High, High, VeryHigh, VeryHigh},
	/* very_high */ {VeryHigh, VeryHigh, VeryHigh, VeryHigh, VeryHigh},
}

// DefaultRules returns the 25-rule ventilation table ordered by
// temperature term, then humidity term.
func DefaultRules() fuzzy.RuleBase {
	rules := make([]fuzzy.Rule, 0, len(TermNames)*len(TermNames))
	for ti, t := range TermNames {
		for hi, h := range TermNames {
			rules = append(rules, fuzzy.Rule{First: t, Second: h, Output: ruleTable[ti][hi]})
		}
	}
	return fuzzy.NewRuleBase(rules...)
}
