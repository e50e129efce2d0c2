package argsplit

import "slices"

// Separator is the token that divides launcher arguments from run arguments.
const Separator = "--"

// Split partitions args at the first occurrence of Separator. Tokens strictly
// before it are launcher arguments, tokens strictly after it are run
// arguments; the separator itself belongs to neither side. Later occurrences
// of the separator are ordinary run arguments. When the separator is absent,
// every token is a launcher argument.
func Split(args []string) (launcherArgs, runArgs []string) {
	i := slices.Index(args, Separator)
	if i < 0 {
		return slices.Clone(args), []string{}
	}
	return slices.Clone(args[:i]), slices.Clone(args[i+1:])
}
