// Package report decodes serialized lint reports into violations.
//
// A report is either an object with a "violations" array or a bare array of
// violation objects:
//
//	{"violations": [{"file": "a.ts", "line": 4, "column": 2,
//	  "message": "Unexpected any", "rule": "no-any",
//	  "severity": "error", "fixable": false}]}
//
// Line and column are zero-based. JSON, YAML and msgpack encodings are
// supported. Decoding is strict about the fields the formatters rely on:
// negative positions and unknown severities are rejected instead of being
// coerced.
package report
