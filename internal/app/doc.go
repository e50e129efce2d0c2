// Package app orchestrates a single launcher invocation: compiler-info mode,
// artifact path resolution, the compiler subprocess, the optional artifact
// subprocess, and cleanup of launcher-owned temporary state. Control flow is
// strictly sequential with at most one subprocess in flight; the exit status
// of the last subprocess becomes the invocation's exit status.
package app
