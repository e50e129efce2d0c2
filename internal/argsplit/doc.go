// Package argsplit partitions a raw command line into launcher arguments and
// run arguments around the literal "--" separator. Launcher arguments
// configure the build; run arguments are forwarded untouched to the compiled
// artifact.
package argsplit
