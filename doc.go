// Package pcalg is a constraint-based causal structure learning library.
//
// It implements the PC (Peter-Clark) algorithm: given a set of random
// variables and a conditional-independence oracle over them, it recovers the
// CPDAG (Completed Partially Directed Acyclic Graph) representing the Markov
// equivalence class of the unknown causal DAG.
//
// The library is organized as one package per pipeline stage:
//
//	graphrepr/ — dense {0,1} adjacency matrix, edge classification, triples
//	sepset/    — separating-set store keyed by ordered vertex pair, mirrored
//	citest/    — conditional-independence test contract + oracle/Gaussian adapters
//	skeleton/  — level-by-level adjacency search (skeleton discovery)
//	collider/  — unshielded-triple orientation into v-structures
//	meek/      — Meek rules R1-R4 closure to a fixed point
//	pcdriver/  — sequences the above into a single CPDAG + SepSetStore result
//
// A runnable CLI lives under cmd/pcalg; it reads an oracle CSV truth table in
// the format documented on citest.ParseOracleCSV and prints the resulting
// CPDAG.
//
//	go get github.com/causalkit/pcalg/pcdriver
package pcalg
