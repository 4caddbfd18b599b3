package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cipherbox/internal/domain"
	"cipherbox/internal/services/convert"
)

// conversionFlags are shared by encode and decode.
type conversionFlags struct {
	with   string
	key    int
	record bool
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.with, "with", "w", "morse", "converter: morse|binary|caesar (or 1|2|3)")
	cmd.Flags().IntVarP(&f.key, "key", "k", 0, "caesar shift (default from config)")
	cmd.Flags().BoolVar(&f.record, "record", false, "append the conversion to history")
}

// resolve returns the converter kind and the effective caesar key.
func (f *conversionFlags) resolve(cmd *cobra.Command) (domain.Kind, int, error) {
	kind, err := convert.ParseKind(f.with)
	if err != nil {
		return "", 0, err
	}
	key := f.key
	if !cmd.Flags().Changed("key") {
		key = appCtx.Config.Caesar.DefaultKey
	}
	return kind, key, nil
}

// inputText joins args, or reads stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// recordConversion appends conv to history and flushes it.
func recordConversion(conv domain.Conversion) error {
	if err := appCtx.History.Load(); err != nil {
		return err
	}
	appCtx.History.Add(conv.Input, conv.Output, conv.Converter)
	return appCtx.History.Flush()
}

func encodeCmd() *cobra.Command {
	var flags conversionFlags
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text (reads stdin when no text is given)",
		Long: `Encode text with the chosen converter.

Flags go before the text; everything from the first word of text on is
treated as input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, key, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			conv, err := appCtx.Convert.Encode(kind, key, text)
			if err != nil {
				return err
			}
			if flags.record {
				if err := recordConversion(conv); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), conv.Output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func decodeCmd() *cobra.Command {
	var (
		flags  conversionFlags
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decode text (reads stdin when no text is given)",
		Long: `Decode text produced by encode.

Caesar decoding needs the key used to encode; it is not stored with the output.
Unknown Morse tokens are skipped unless --strict is set.

Flags go before the text; everything from the first token of text on is
treated as input, so Morse such as "-.-" or "---" needs no quoting. Text that
starts with M ("--") must be preceded by a "--" separator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, key, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			svc := appCtx.Convert
			if strict {
				svc = convert.New(convert.Options{MorseStrict: true}, logger.Named("convert"))
			}
			conv, err := svc.Decode(kind, key, text)
			if err != nil {
				return err
			}
			if flags.record {
				if err := recordConversion(conv); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), conv.Output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown morse tokens")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
