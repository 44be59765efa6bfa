// Package match ranks known names by similarity to a misspelled one.
//
// It backs the "did you mean" hints of schema loading and of the command line:
//   - NormalizeIdent folds identifiers so that "order_id" and "OrderID" compare equal
//   - Levenshtein computes the edit distance between two strings
//   - Rank orders candidate names by normalized similarity
//   - Suggest picks the single best candidate above a threshold
package match
