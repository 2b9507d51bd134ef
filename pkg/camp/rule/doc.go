// Package rule provides the declarative rule algebra of CAMP.
//
// A rule holds a pattern and, for the functional variants (When, Global, Not),
// an optional continuation rule. Rules are built in two phases:
//
//	when, _ := rule.NewWhen(p)       // functional: rule_when (p)
//	ret, _ := rule.NewReturn(q)      // terminal:   rule_return (q)
//	applied, _ := when.Apply(ret)    // applied:    rule_when (p) ;; rule_return (q)
//
// Apply never mutates the functional rule; it returns a new node. A rule can
// only be applied once: applying an applied rule is an invalid-argument error.
//
// Return and Match are terminal and take no continuation.
package rule
