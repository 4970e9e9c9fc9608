// Package mcdm is a small multi-criteria decision making toolkit: objective
// criterion weighting with CRITIC and alternative ranking with TOPSIS.
//
// 🚀 What is mcdm?
//
//	A set of pure, deterministic engines plus the plumbing around them:
//		• Numeric kernels: dense matrices, column reductions, Pearson correlation
//		• Normalizers: min-max (benefit/cost) and Euclidean vector normalization
//		• CRITIC: weights from dispersion and inter-criterion conflict
//		• TOPSIS: closeness to the ideal solution and a stable ranking
//		• Datasets: YAML, JSON, TOML and spreadsheet-style CSV input
//		• Reports: run IDs, timestamps and a JSON file store
//
// ✨ Why choose mcdm?
//
//   - Total engines: every well-shaped input yields a result; degenerate
//     columns follow documented fallbacks instead of failing
//   - Inspectable: every intermediate artifact is returned, not hidden
//   - No hidden state: inputs are never mutated, results are freshly allocated
//
// Packages:
//
//	matrix/     Dense storage and the column kernels
//	decision/   Direction (benefit/cost), shape and weight validation
//	normalize/  MinMax and Vector normalization
//	critic/     CRITIC weighting
//	topsis/     TOPSIS ranking
//	dataset/    file readers and CSV writers
//	analysis/   Runner composing the engines into Reports
//	store/      latest Report per kind as JSON files
//	cmd/mcdm/   command-line interface
//
// Quick example:
//
//	w, _ := critic.Run(rows, dirs)
//	r, _ := topsis.Run(rows, w.Weights, dirs)
//	fmt.Println(r.Ranking)
//
//	go install github.com/katalvlaran/mcdm/cmd/mcdm@latest
package mcdm
