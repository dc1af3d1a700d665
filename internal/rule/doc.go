// Package rule defines the style rule data model shared by the compiler,
// the identifier encoder and the loaders.
//
// A Rule is an ordered list of declarations. Order is significant: at-rules
// and nested blocks are emitted in declaration order and CSS cascade depends
// on source order. Plain maps are accepted wherever a rule is expected and
// are visited in sorted key order so their output is deterministic.
//
// Keys are classified exactly once per declaration with Classify. The
// resulting Kind is the only thing the compiler dispatches on:
//
//	color              KindProperty
//	&:hover            KindNested
//	@media (x)         KindAtRule       value is a rule
//	@media             KindAtRuleGroup  value maps query -> rule
//	selectors          KindSelectors    value maps selector -> rule
//	vars               KindVars         value maps variable -> value
//	var(--x) / --x     KindVar          value is the variable value
package rule
