// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"jcdist-core/seq"
	"jcdist/internal/output"
)

// Common holds CLI fields shared by jcdist and jcdist-sweep.
type Common struct {
	// Input
	SeqA string
	SeqB string

	// Output
	Output string // text|tsv|json|jsonl
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool that the caller can use to set Common.Header =
// !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Input
	fs.StringVar(&c.SeqA, "seq-a", "", "first aligned sequence (5'→3')")
	fs.StringVar(&c.SeqB, "seq-b", "", "second aligned sequence (5'→3')")
	fs.StringVar(&c.SeqA, "a", "", "alias of --seq-a")
	fs.StringVar(&c.SeqB, "b", "", "alias of --seq-b")

	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: text | tsv | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes the header flag and adopts positional sequences,
// then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		if c.SeqA != "" || c.SeqB != "" {
			return errors.New("positional sequences conflict with --seq-a/--seq-b")
		}
		if len(posArgs) != 2 {
			return fmt.Errorf("expected exactly two positional sequences, got %d", len(posArgs))
		}
		c.SeqA, c.SeqB = posArgs[0], posArgs[1]
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools. On success
// the sequences in c are replaced by their normalized forms, so the model
// layers downstream can assume clean input.
func Validate(c *Common) error {
	if c.SeqA == "" || c.SeqB == "" {
		return errors.New("two sequences are required: --seq-a/--seq-b or two positionals")
	}
	a, err := seq.Validate(c.SeqA)
	if err != nil {
		return fmt.Errorf("--seq-a: %v", err)
	}
	b, err := seq.Validate(c.SeqB)
	if err != nil {
		return fmt.Errorf("--seq-b: %v", err)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d (the pair must be aligned)", seq.ErrLengthMismatch, len(a), len(b))
	}
	c.SeqA, c.SeqB = a, b

	switch c.Output {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
