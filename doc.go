// Package styl compiles nested style rules into CSS and names them.
//
// Every rule passed to Style, Keyframes or GlobalStyle is compiled to CSS
// text and written once to the engine's sheet; Style and Keyframes return the
// generated class or keyframes name. Extract returns the accumulated CSS and
// resets the sheet.
//
//	btn := styl.MustStyle(styl.R(
//		"color", "blue",
//		"selectors", styl.R("&:hover", styl.R("color", "red")),
//	))
//	css := styl.Extract() // .c0{color:blue;}.c0:hover{color:red;}
//
// Identifiers come from one of three strategies, fixed per Engine:
//
//   - ident.Sequential (default): a counter, or a per-file counter under
//     EnterFileScope;
//   - ident.ContentHash: a fingerprint of the rule, so identical rules share
//     one name and compile once;
//   - ident.Random: random names.
//
// Package-level functions use a process-wide Engine returned by Default.
// Independent sheets are separate Engines created with New.
package styl
