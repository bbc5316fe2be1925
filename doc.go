// Package permgroup is an in-memory kernel for computing with finite
// permutation groups: orbits of a base point, Schreier vectors with
// transporter bookkeeping, and stabilizer generating sets via
// Schreier's Lemma.
//
// 🚀 What is permgroup?
//
//	A small, deterministic, thread-aware library that brings together:
//		• Sparse permutations: apply, compose, invert; pure values, no mutation
//		• Word algebra: letters over a generator list, free reduction,
//		  table-driven evaluation, connecting-word shortening
//		• Orbit closure: breadth-first Schreier-vector construction with
//		  first-discovery-wins transporters and a provable round bound
//		• Schreier's Lemma: stabilizer generators extracted from a
//		  completed vector
//
// ✨ Why choose permgroup?
//
//   - Minimal API – clear naming, one package per concern
//   - Deterministic by default – ordered vectors, reproducible results
//   - Pure Go – no cgo, no hidden state
//   - Extensible – discovery/round hooks and optional parallel expansion
//
// Under the hood, everything is organized under four subpackages:
//
//	perm/     — Point and sparse Perm values with apply/compose/invert
//	word/     — Letter, Word, generator Table, reduction and shortening
//	orbit/    — Schreier Vector, Build, CompletenessBound, BuildClosure
//	schreier/ — stabilizer generators per Schreier's Lemma
//
// Quick sketch, the symmetric group S₃ acting on {1,2,3}:
//
//	σ = (1 2), τ = (2 3)    base point k = 1
//	orbit(k)  = {1, 2, 3}
//	stabilizer(k) = ⟨ Schreier generators of the completed vector ⟩
//
// Dive into the per-package doc.go files for contracts, complexity, and
// worked examples, or run the scenarios under examples/.
//
//	go get github.com/katalvlaran/permgroup
package permgroup
