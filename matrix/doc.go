// Package matrix provides the dense linear-algebra primitives backing the
// chain package: a row-major float64 matrix with bounds-checked access and a
// row-vector × matrix product.
//
// The surface is intentionally small — it covers exactly what propagating a
// probability distribution through a family of stochastic transition matrices
// requires:
//
//   - NewDense       — allocation with shape validation
//   - At / Set       — bounds-checked element access
//   - Row / SetRow   — whole-row reads and writes (copy semantics)
//   - VecMul         — v′ = v·M for a row vector v
//   - Clone          — deep, independent copies for snapshots
//   - RowStochastic  — transition-matrix sanity check
//
// Design principles:
//   - Deterministic, side-effect free, no global state.
//   - No panics on user input — only sentinel errors, matched via errors.Is.
//   - Flat row-major backing storage for cache friendliness.
package matrix
