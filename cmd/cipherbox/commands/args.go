package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// guardMorseArgs inserts a "--" terminator before the first bare Morse token
// so pflag does not read "-.-" or "---" as a flag. A token made only of '.',
// '-' and '/' can never name a flag. An explicit "--" already present is left
// alone, which means a leading M ("--") needs its own terminator before it.
func guardMorseArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !isMorseToken(a) || (i > 0 && takesValue(cmd, args[i-1])) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isMorseToken(s string) bool {
	if s == "" {
		return false
	}
	return strings.Trim(s, ".-/") == ""
}

// takesValue reports whether a is a flag that consumes the next argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if !strings.HasPrefix(a, "-") || strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		f = lookupFlag(cmd, a[2:], "")
	case len(a) == 2:
		f = lookupFlag(cmd, "", a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name, shorthand string) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if name != "" {
			if f := fs.Lookup(name); f != nil {
				return f
			}
			continue
		}
		if f := fs.ShorthandLookup(shorthand); f != nil {
			return f
		}
	}
	return nil
}

// execute runs root with args after protecting Morse text from flag parsing.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(guardMorseArgs(root, args))
	return root.Execute()
}
