// Package citest defines Contract: the uniform call shape the adjacency
// search uses to invoke externally supplied (conditional) independence
// predicates, plus two concrete adapters.
//
// Contract is deliberately a two-method interface so oracle and sample-based
// testers are interchangeable:
//
//   - OracleContract reads a pre-tabulated truth table in CSV form,
//     canonicalizing X<Y and ascending conditioning-set names exactly as the
//     table does. Deterministic.
//   - GaussianContract computes Pearson correlation / partial correlation
//     p-values over continuous tabular data under a linear-Gaussian
//     assumption, the sample-based counterpart to the oracle table.
package citest
