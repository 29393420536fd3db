// Package encode writes a node tree as text.
//
// JSON output puts ": " after keys and ", " between members by default.
// [EncodeCompact] drops the spaces and [EncodeIndent] lays members out one
// per line. YAML output goes through goccy/go-yaml with object member
// order preserved.
package encode
