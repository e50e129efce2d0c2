// Package executor provides the one subprocess capability the launcher
// needs: run a program with an argument vector (no shell interpolation),
// inheriting the standard streams, blocking until the child terminates, and
// map its termination to an exit status. The verbose command echo is purely
// cosmetic and never affects what is executed.
package executor
