// Package exotic implements the two exotic object families spec §4.3
// singles out — Module Namespace and ArrayBuffer, plus Array Iterator's
// next() — and the top-level internal-method dispatcher every other
// package calls instead of object's ordinary-only functions: Get, Set,
// HasProperty, GetOwnProperty, DefineOwnProperty, Delete, OwnPropertyKeys,
// GetPrototypeOf, SetPrototypeOf, IsExtensible, PreventExtensions. Each
// checks for a kind needing exotic behavior and otherwise falls through to
// package object, the "tagged union + match on kind" model from spec §9
// rather than an inheritance hierarchy.
package exotic
