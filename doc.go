// Package tarski computes sheaf cohomology over complete lattices — an
// order-theoretic fixed-point engine for deciding whether locally-assigned
// lattice values on a graph can be glued into a globally consistent
// assignment, and for quantifying the obstruction when they cannot.
//
// 🚀 What is tarski?
//
//	A pure, in-memory library built around Tarski's fixed-point theorem:
//		• Complete lattices: boolean, integer interval, power-set, discretized
//		  unit interval, products — each with a proven convergence height
//		• Galois connections: identity, constant, threshold, scaling adjoint pairs
//		• Cell complexes: graph (vertices+edges) and simplicial (+triangles)
//		  builders with face/coface/incidence queries
//		• Cellular sheaves: constant, threshold, and twisted (edge-scaled)
//		• Tarski & Hodge Laplacians: monotone meet/pullback diffusion operators
//		• Greatest-post-fixpoint cohomology solver with guaranteed bounds
//		• Obstruction detection and a governance-facing coherence engine
//
// ✨ Why choose tarski?
//
//   - Guaranteed termination – every solve converges within height+10 steps
//   - Total over valid input – non-convergence is a reported flag, never a panic
//   - Pure Go – no cgo, no hidden runtime deps
//   - Generic – bring your own lattice; the solver only needs meet/join/leq
//
// Everything is organized under six subpackages:
//
//	lattice/    — Complete[T] abstraction + concrete bounded lattices
//	galois/     — Connection[A,B] adjoint pairs (restriction maps)
//	complex/    — immutable cell complexes with incidence structure
//	sheaf/      — cellular sheaves (stalks + restrictions) and cochains
//	cohomology/ — Laplacian operators, fixed-point solver, obstructions
//	governance/ — coherence scoring over position vectors + edge lists
//
// Quick ASCII example:
//
//	    A───B
//	     ╲ ╱
//	      C
//
//	a triangle of three entities; TH⁰ of a sheaf over it is exactly the set
//	of vertex assignments every edge agrees with — the global sections.
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/tarski
package tarski
