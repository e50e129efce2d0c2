// Package artifact resolves where the compiled artifact is written and owns
// the lifetime of the temporary directory backing it. A user-supplied output
// path persists after the run; a generated path lives in a fresh uniquely
// named temporary directory that is removed on every exit path. Cleanup
// failures are swallowed so they can never change an invocation's result.
package artifact
