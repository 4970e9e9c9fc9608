// Package dataset loads decision problems from files and writes analysis
// results back out as CSV.
//
// A Dataset carries criterion names and directions, alternative names, an
// optional weight vector and the m×n decision matrix. Structured documents
// (YAML, JSON, TOML) decode straight into it; CSV files follow one of three
// spreadsheet layouts:
//
//	simple:   ,C1,C2,...          (every criterion is a benefit)
//	          A1,v11,v12,...
//
//	advanced: ,max,min,...        (direction row first)
//	          ,C1,C2,...
//	          A1,v11,v12,...
//
//	weighted: ,C1,C2,...          (TOPSIS input)
//	          ,max,min,...
//	          ,0.4,0.6,...
//	          A1,v11,v12,...
//
// LayoutAuto picks advanced when every non-empty header cell is a direction
// alias and simple otherwise; weighted must be requested explicitly.
//
// Cell values go through ParseValue: comma decimals are accepted and blank
// or unparseable cells become 0. The engines never see a string.
package dataset
