// Package hclconfig loads the optional HCL defaults file. The file supplies
// the same defaults the environment variables can (compiler, standard, base
// flags, verbosity) and sits one notch below them in precedence. Expressions
// in the file may reference the process environment through the `env` map:
//
//	compiler = "clang++"
//	standard = "-std=c++20"
//	flags    = ["-O2", "-march=native"]
//	verbose  = env.CI != ""
//
// The file format is decoded into the format-agnostic config.FileDefaults;
// nothing outside this package touches HCL types.
package hclconfig
