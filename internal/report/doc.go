// Package report renders the human-readable summary printed after a run.
//
// The layout lives in embedded templates under templates/ and is rendered
// with sprig functions, so wording changes do not touch Go code.
package report
