// Package libdiff computes line differences between JSON documents.
//
// # Usage
//
//	// Compute the diff between two nodes
//	res, err := libdiff.Diff(oldNode, newNode)
//	if res.Changed() {
//		res.Write(os.Stdout, false)
//	}
//
// Both sides are encoded with one member per line before comparison, so a
// change to a single value shows up as a single changed line.
package libdiff
