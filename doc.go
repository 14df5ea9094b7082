// Package zerocalc implements a line calculator: a tokenizer, a parser that
// compiles one expression to a postfix program, and a stack machine that runs
// programs against persistent variables.
//
// Numbers are 128-bit integers or 64-bit floats. Integer arithmetic is exact
// and checked; anything that fails, such as overflow or division by zero,
// results in NaN, which then absorbs every operation it takes part in. "1/0 +
// 5" is NaN rather than an error. Syntax errors, on the other hand, are
// reported with the byte span of the offending token.
//
// Operators of equal precedence group right to left, so "1-2-3" is
// "1-(2-3)" = 2, and "2/2/2" is 2.
package zerocalc
