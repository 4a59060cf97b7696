// Package sanitizer normalizes request input before it reaches the domain
// services.
//
// All functions are idempotent and never fail: invalid input collapses to an
// empty string, which the callers treat as "not provided".
//
// Normalization includes:
//   - Free text (search location): trim, collapse inner whitespace, keep case
//   - Keywords (property type, price range): trim and lowercase
//   - Identifiers (property and booking ids): trim, reject control characters
package sanitizer
