// Package textutil provides text processing utilities for name
// normalization and filename sanitization.
//
// The primary use cases are:
//   - Normalizing raw asset names and catalog titles into comparable keys
//   - Sanitizing track titles for safe filesystem use
//
// Normalization case-folds the input and drops everything that is not a
// letter or digit, so "Crush & Contort" and "crush_contort" collapse to
// the same key.
package textutil
