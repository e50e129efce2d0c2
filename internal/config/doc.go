// Package config defines the normalized launcher configuration and the
// interpreter that produces it. The interpreter is a pure function of the
// launcher-argument list, an explicit snapshot of the recognized environment
// variables, and the optional file defaults; no ambient state is read after
// the snapshot is taken. Concrete file-format loading lives in a separate
// package (hclconfig).
package config
