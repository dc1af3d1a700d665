// Package sheet accumulates compiled CSS text.
//
// A Sheet owns three pieces of state:
//
//   - the target Resource the text is written to, resolved lazily through a
//     Host by a fixed id and replaced by an in-memory Buffer when no host is
//     reachable;
//   - a dedupe set keyed by identifier, so each rule is compiled and written
//     at most once between extractions;
//   - an optional pending queue used when a Scheduler batches writes.
//
// The final text is always the concatenation of Append calls in call order,
// whether writes are immediate or batched. Extract returns that text and
// resets the sheet, including the dedupe set.
package sheet
