// Package site models the input of a charge-distribution computation: PTM
// sites with a probability for every charge of a shared contiguous range.
//
// Charge column labels such as "P(-2)", "P(0)" and "P(+3)" are parsed once at
// the boundary into a [ChargeRange]; the combination algorithms only ever see
// a validated [Table].
//
// Rows whose probabilities do not sum to 1 are handled by an explicit
// [Policy]: [Strict] reports the offending row as a [*RowError], [Lenient]
// renormalizes it (or substitutes a neutral point mass when it has no mass).
package site
