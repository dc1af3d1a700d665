// Package ident produces the identifiers that name generated classes,
// keyframes, variables, containers and themes.
//
// Identifiers are a single-character kind prefix followed by a body. The body
// comes from one of three strategies:
//
//   - Sequential: a monotonic counter, or a per-file-scope counter seeded by
//     a scope hash (see internal/scope). This is the default.
//   - ContentHash: Encode(Fingerprint(rule)). Structurally identical rules get
//     identical ids, which turns the sheet's dedupe cache into memoization.
//   - Random: eight symbols from a random UUID. No dedupe by content.
//
// Fingerprints are computed over MarshalCanonical output, the only
// serialization that should be used for content-addressed identity. They are
// NOT cryptographic and must never guard anything security sensitive.
package ident
