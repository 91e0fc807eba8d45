// Package dataset generates the synthetic student table used by the bias
// simulator and compares score means between demographic groups.
//
// The table is deliberately biased: RecommendedScore is deflated for some
// groups while ActualScore is left untouched, so students can discover the
// gap by comparing group means.
package dataset
