// Package carteira implements the core engine of a personal investment
// tracker for the Brazilian market. It is designed to be local-first and
// auditable: the user's positions live in a plain JSONL file they own, and
// every valuation is derived from explicit, reproducible inputs.
//
// The engine is built from small, composable pieces:
//   - Asset Classification: an ordered, first-match-wins rule list that maps
//     a free-text ticker or name (PETR4, HGLG11, "bitcoin", "CDB 110% CDI")
//     to one of the closed asset categories.
//   - Portfolio Ledger: the set of positions the user holds, with validated
//     add/edit/remove operations and insertion-ordered listing.
//   - Quote Cache: a TTL-bounded cache of market quotes that batches and
//     coalesces calls to an external quote provider, and degrades to cached
//     data when the provider fails or throttles.
//   - Valuation: recomputes current value and performance for quoted
//     categories when fresh quotes arrive, leaving manually valued
//     categories untouched.
//   - Allocation: groups positions by category into the proportional
//     breakdown shown on any dashboard.
//
// This package serves as the foundational logic for the `cart` command-line
// tool. External services (quote provider, known-asset search, durable
// storage) are consumed only through interfaces declared here.
package carteira
