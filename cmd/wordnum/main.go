// Command wordnum converts number words to numeric values from the
// command line.
//
//	wordnum convert twenty-three point five
//	echo "one hundred and first" | wordnum convert -
//	wordnum locales
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wordnum/wordnum"
)

// Version is set at build time.
var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordnum",
		Short:         "Convert number words to numbers",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newLocalesCmd())
	return rootCmd
}

// convertOutput is the --json shape for a single conversion.
type convertOutput struct {
	Text    string        `json:"text"`
	Value   wordnum.Value `json:"value"`
	Decimal bool          `json:"decimal"`
	Ordinal bool          `json:"ordinal"`
}

func newConvertCmd() *cobra.Command {
	var (
		locale string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "convert [words...]",
		Short: "Convert a number expression to its numeric value",
		Long: `Convert joins its arguments into one expression and prints the
numeric value. With a single "-" argument, expressions are read from
stdin, one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := wordnum.New(wordnum.Locale(locale))
			if err != nil {
				return err
			}
			if len(args) == 1 && args[0] == "-" {
				return convertLines(cmd.OutOrStdout(), cmd.InOrStdin(), conv, asJSON)
			}
			return convertOne(cmd.OutOrStdout(), strings.Join(args, " "), conv, asJSON)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", string(wordnum.English), "locale code of the lexicon to use")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the bare value")
	return cmd
}

func convertOne(w io.Writer, text string, conv *wordnum.Converter, asJSON bool) error {
	v, err := conv.Convert(text)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(w).Encode(convertOutput{
			Text:    text,
			Value:   v,
			Decimal: v.IsDecimal(),
			Ordinal: v.IsOrdinal(),
		})
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func convertLines(w io.Writer, r io.Reader, conv *wordnum.Converter, asJSON bool) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := convertOne(w, line, conv, asJSON); err != nil {
			return err
		}
	}
	return sc.Err()
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List registered locales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, loc := range wordnum.Locales() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), loc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
