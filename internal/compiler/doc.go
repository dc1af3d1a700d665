// Package compiler turns style rules into CSS text.
//
// CompileRule is a depth-first transduction over a rule's declarations:
//
//	selector{<declarations>}<sibling blocks>
//
// optionally wrapped once more as outer{...} when compiling inside an
// at-rule. Declarations are plain properties (kebab-cased, bare numbers get
// px unless the property is unitless) and variable assignments. Sibling
// blocks come from nested selectors, the selectors map and at-rules, in
// declaration order.
//
// The compiler is pure: it never touches a sheet. A failed compilation
// returns a *CompileError and no text, so callers can guarantee that no
// partial rule ever reaches the output.
package compiler
