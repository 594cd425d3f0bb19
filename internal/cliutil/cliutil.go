// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

// IsBoolFlag reports whether the named flag on fs parses without a value.
// Unknown names count as value-taking; fs.Parse rejects them later with
// its usual error.
func IsBoolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// SplitFlagsAndPositionals separates argv into flag arguments and bare
// positionals, so sequences may appear before, between, or after flags.
// "--" ends flag parsing, "-" counts as a positional, "--x=y" stays one
// token, and a non-bool flag consumes the following token as its value.
// Call before fs.Parse(flagArgs); all flags must already be registered.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !IsBoolFlag(fs, strings.TrimLeft(arg, "-")) && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, posArgs
}
