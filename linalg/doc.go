// Package linalg provides the dense and sparse complex matrix kernels the
// configuration core is built on: LU factorization with partial pivoting,
// determinants, inverses, and a coordinate-format sparse matrix for local
// operators.
//
// The matrices involved are small (particle count by particle count, or one
// site's local Fock basis), so the kernels favor clarity over blocking or
// vectorization. All element types are complex128.
package linalg
