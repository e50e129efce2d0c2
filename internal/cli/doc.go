// Package cli is the launcher's argument front door. It snapshots the
// recognized environment variables, loads the optional defaults file, splits
// the raw command line at the "--" separator, and interprets the launcher
// side into the normalized configuration. Process-level concerns (exit codes
// for configuration errors) are expressed through ExitError.
package cli
