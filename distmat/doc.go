// Package distmat provides the distance matrix representations
// consumed by the persistence engine.
//
// Two concrete forms are supported: a dense triangular-packed matrix
// built from a flat distance array, and a sparse neighbor-list matrix
// built from COO triples filtered by a threshold at construction
// time. Both are immutable once built and are cheap to share across
// independent runs.
package distmat
