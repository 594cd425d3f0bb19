// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"jcdist/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, search/sweep blocks).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – Jukes-Cantor distance toolkit\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -a, --seq-a string       First aligned sequence (5'→3', A/C/G/T) [*]")
		fmt.Fprintln(out, "  -b, --seq-b string       Second aligned sequence (5'→3', A/C/G/T) [*]")
		fmt.Fprintln(out, "      Two bare arguments are also accepted as the pair.")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string      Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header          Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet              Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version            Print version and exit")
		fmt.Fprintln(out, "  -h, --help               Show this help and exit")
	}
}
