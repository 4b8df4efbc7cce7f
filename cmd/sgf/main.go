package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xiam/sgf"
	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/lexer"
)

func main() {
	if err := cmdRoot(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdRoot(fs afero.Fs) *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "sgf",
		Short: "SGF game tree utility",
		Long:  `Parse SGF game trees and inspect their tokens`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			log.SetFlags(logFlags)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.AddCommand(cmdParse(fs))
	cmd.AddCommand(cmdTokens(fs))
	cmd.AddCommand(cmdVersion())
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdParse(fs afero.Fs) *cobra.Command {
	asJSON := false
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&asJSON, "json", asJSON, "print the tree as JSON")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save parse to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "parse <sgf-file>...",
		Short:        "parse SGF files and print their game trees",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			if quiet {
				verbose, debug = false, false
			}

			out := &bytes.Buffer{}
			for _, path := range args {
				input, err := afero.ReadFile(fs, path)
				if err != nil {
					return err
				}
				if debug {
					log.Printf("%s: read %d bytes\n", path, len(input))
				}

				root, err := sgf.Parse(input)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if verbose {
					log.Printf("%s: parsed %d nodes\n", path, countNodes(root))
				}

				if asJSON {
					data, err := json.MarshalIndent(root, "", "  ")
					if err != nil {
						return err
					}
					out.Write(data)
					out.WriteByte('\n')
				} else {
					ast.Fprint(out, root)
				}
			}

			if outputFile == "" {
				_, err := cmd.OutOrStdout().Write(out.Bytes())
				return err
			}
			if err := afero.WriteFile(fs, outputFile, out.Bytes(), 0o644); err != nil {
				return err
			}
			if !quiet {
				log.Printf("%s: wrote %d bytes\n", outputFile, out.Len())
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdTokens(fs afero.Fs) *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "tokens <sgf-file>",
		Short:        "print the tokens of an SGF file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			input, err := afero.ReadFile(fs, path)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(input)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			w := cmd.OutOrStdout()
			for i, tok := range tokens {
				line, col := tok.Pos()
				fmt.Fprintf(w, "%-24s %5d %-14s %q\n", fmt.Sprintf("%s:%d:%d:", path, line, col), i, tok.Type(), tok.Text())
			}
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), sgf.Version().String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), sgf.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func countNodes(n *ast.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += countNodes(child)
	}
	return count
}
