// Package ripsgo computes Vietoris-Rips persistence barcodes for Go.
//
// Ripsgo takes a finite metric space, given as a dense distance matrix or a
// sparse set of weighted edges, and computes the persistent homology of its
// Vietoris-Rips filtration with coefficients in a prime field. The output is
// a barcode: for every homology dimension, the list of (birth, death)
// intervals describing when topological features appear and disappear as the
// distance threshold grows.
//
// # Quick Start
//
// Dense input (lower-triangular distances, row by row):
//
//	barcode, _ := ripsgo.Dense([]float32{1, 1.414, 1, 1, 1.414, 1})
//	for dim, pairs := range barcode.Intervals {
//	    for _, p := range pairs {
//	        fmt.Println(dim, p.Birth, p.Death)
//	    }
//	}
//
// Sparse input (coordinate triples, self-loops set vertex birth times):
//
//	barcode, _ := ripsgo.Sparse(rows, cols, weights, n,
//	    ripsgo.WithThreshold(2.0),
//	    ripsgo.WithMaxDim(2),
//	)
//
// # Options
//
// Coefficients default to the two-element field and homology is computed up
// to dimension one. Both are configurable:
//
//	barcode, _ := ripsgo.Dense(distances,
//	    ripsgo.WithModulus(3),
//	    ripsgo.WithMaxDim(2),
//	    ripsgo.WithThreshold(1.5),
//	)
//
// When no threshold is given for dense input, the enclosing radius of the
// point set is used: beyond it the complex is a cone and every barcode
// interval has already closed, so nothing is lost and much less work is done.
//
// # Batch Runs
//
// Independent matrices can be processed concurrently with BatchRun, with an
// optional resource.Controller bounding memory and parallelism:
//
//	barcodes, _ := ripsgo.BatchRun(ctx, matrices, ripsgo.WithConcurrency(4))
//
// Barcodes can be persisted to disk with the persistence package.
package ripsgo
