// Package lint defines the violation record handed over by a linting engine.
//
// # Purpose
//
//   - Provide a small, immutable data model for rule violations: file path,
//     zero-based start position, message, rule id, severity and whether an
//     automated fix exists.
//   - Offer the canonical ordering (Sort) shared by every output format.
//   - Offer a Reporter/Bag pair so engines can emit violations without
//     depending on formatting.
//
// # Scope
//
// Package lint does no formatting and no IO. Rendering lives in
// internal/lintfmt, decoding of serialized reports in internal/report.
//
// # Severity
//
// Severity is a closed enumeration with two members, SevWarning and
// SevError. The zero value is not a valid severity; the aggregator rejects
// it.
package lint
