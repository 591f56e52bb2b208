// Package matsweep reads a small square matrix from the console and derives a
// second matrix from it with one of two sweep policies.
//
// What is matsweep?
//
//	A tiny, dependency-light toolkit plus CLI that brings together:
//		• Dense storage: bounds-checked row-major float64 matrices
//		• Global two-tier rewrite: lower-right triangle → max / second max
//		• Local triangle maximum: per-cell max over a right-opening sweep
//		• Console front end: prompts, validation, localized messages (en, ru)
//
// Under the hood, everything is organized under these packages:
//
//	matrix/    - Dense type, sentinel errors, validators, extrema
//	transform/ - GlobalTwoTier and LocalTriangle policies
//	console/   - Scanner, Printer, message catalogs and Session
//	config/    - YAML configuration with defaults and validation
//	logging/   - slog logger construction
//	cmd/       - the matsweep CLI
//
// Quick ASCII example (global two-tier, n=3; * marks cells with i+j ≥ n):
//
//	9 1 2        9 1 2
//	3 4 5*   →   3 4 9
//	6 7*8*       6 9 9
//
//	go install github.com/katalvlaran/matsweep/cmd/matsweep@latest
package matsweep
