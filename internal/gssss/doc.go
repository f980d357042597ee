// Package gssss selects integration coefficients for the GSSSS family of
// single-step single-solve time integration algorithms.
//
// A scheme is identified by name and, for the dissipative members, by the
// high-frequency spectral radius r∞. The selector turns that pair into the
// scalar coefficient set {W1, W1L1, W2L2, W3L3, W1L4, W2L5, W1L6, l1..l5}
// that drives the amplification matrix and the equivalent digital filter.
//
// The U0 family members are parameterized by the limit roots of the
// amplification matrix: two principal roots and one spurious root, each in
// [0,1]. Collapsing all three to r∞ recovers the generalized-alpha method,
// pinning the spurious root at zero recovers WBZ-alpha, and placing it at
// (1-r∞)/(2r∞) recovers HHT-alpha. The classical Newmark and Wilson schemes
// carry fixed constants and ignore r∞.
package gssss
