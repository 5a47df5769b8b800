// Package conv provides range-checked integer conversions.
//
// Simplex indices cross several representation boundaries (packed
// table entries, bitmap keys, vertex positions). Every such crossing
// goes through this package so that an out-of-range value surfaces as
// an explicit error instead of a silent wrap.
package conv
