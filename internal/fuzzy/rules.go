package fuzzy

import "fmt"

// Rule reads "IF first IS First AND second IS Second THEN output IS Output".
// Rules are identified by position; duplicates contribute independently.
type Rule struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Output string `json:"output"`
}

func (r Rule) String() string {
	return fmt.Sprintf("IF %s AND %s THEN %s", r.First, r.Second, r.Output)
}

// RuleBase is an ordered, immutable list of rules.
type RuleBase struct {
	rules []Rule
}

// NewRuleBase copies rules into a rule base.
func NewRuleBase(rules ...Rule) RuleBase {
	rb := RuleBase{rules: make([]Rule, len(rules))}
	copy(rb.rules, rules)
	return rb
}

// Len returns the number of rules.
func (rb RuleBase) Len() int { return len(rb.rules) }

// At returns the i-th rule.
func (rb RuleBase) At(i int) Rule { return rb.rules[i] }

// Rules returns a copy of the rules in table order.
func (rb RuleBase) Rules() []Rule {
	out := make([]Rule, len(rb.rules))
	copy(out, rb.rules)
	return out
}

// compiledRule holds term indices resolved against the engine's variables.
type compiledRule struct {
	first, second, output int
}

func compile(rb RuleBase, first, second, output *Variable) ([]compiledRule, error) {
	out := make([]compiledRule, len(rb.rules))
	for i, r := range rb.rules {
		var (
			c   compiledRule
			err error
		)
		if c.first, err = first.lookup(r.First); err != nil {
			return nil, &ErrRule{Index: i, Rule: r, Err: err}
		}
		if c.second, err = second.lookup(r.Second); err != nil {
			return nil, &ErrRule{Index: i, Rule: r, Err: err}
		}
		if c.output, err = output.lookup(r.Output); err != nil {
			return nil, &ErrRule{Index: i, Rule: r, Err: err}
		}
		out[i] = c
	}
	return out, nil
}
