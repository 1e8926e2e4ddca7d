// SPDX-License-Identifier: MIT

// Package revision derives new tables from a base table and a sparse table of
// percentage modifiers:
//
//	result[i] = base[i]                        if modifier i is unset
//	result[i] = base[i] × (1 + modifier[i]/100) otherwise
//
// A modifier of 5 means +5%, -100 zeroes the cell and anything below -100
// flips the sign; none of these are errors. Inputs are never mutated and every
// call returns a freshly allocated buffer.
package revision
