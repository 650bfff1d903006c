// Package cli implements the tnet command line interface.
//
// Without a sub-command, tnet starts an interactive index shell. Sub-commands
// parse, match and rename apply name patterns to single names in batch-mode.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tnet"
	"github.com/npillmayer/tnet/index"
	"github.com/npillmayer/tnet/index/namepat"
	"github.com/npillmayer/tnet/tnet/ui/termui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tnet",
	Short: "Work with tensor network indices",
	Long: `Welcome to TNET V0.1 (experimental)

TNET lets you create tensor indices and apply priming and renaming
patterns to them.

TNET is able to run in interactive mode or execute single commands in
batch-mode.  If run in interactive mode, it will prompt for statements
in a terminal REPL, operating on a workspace of indices.

`,
	Args: cobra.NoArgs,
	RunE: runIndexShell,
}

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>...",
	Short: "Display the parts of name patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parsePatterns(cmd.OutOrStdout(), args)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <name> <pattern>",
	Short: "Check if an index name matches a name pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return matchName(cmd.OutOrStdout(), args[0], args[1])
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <name> <from> <to>",
	Short: "Rename an index name by a pair of name patterns",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renameName(cmd.OutOrStdout(), args[0], args[1], args[2])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		tnet.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().Bool("show-ids", false, "Display fragments of index IDs")
	rootCmd.PersistentFlags().Bool("read32bit-ids", false, "Read index files with legacy 32 bit IDs")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.AddCommand(parseCmd, matchCmd, renameCmd)
}

func runIndexShell(cmd *cobra.Command, args []string) error {
	tracing.Infof("tnet index shell called")
	repl, err := termui.NewBaseREPL("tnet", "0.1 experimental",
		appPathsOrDefault().StateDir(), statementNames()...)
	if err != nil {
		return err
	}
	sh := newIndexShell(repl.Stdout())
	repl.Interpreter = sh
	repl.Helper = displayStatements
	repl.Prompt(true)
	return nil
}

// --- Batch commands --------------------------------------------------------

func parsePatterns(w io.Writer, patterns []string) error {
	f := Formatter{}
	for _, s := range patterns {
		p, err := namepat.Parse(s)
		if err != nil {
			return err
		}
		if _, err := f.Format(p, w); err != nil {
			return err
		}
	}
	return nil
}

func matchName(w io.Writer, name, pattern string) error {
	i, err := index.New(name, 1)
	if err != nil {
		return err
	}
	ok, err := i.Matches(pattern)
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintf(w, "%s matches %s\n", i.Name(), pattern)
	} else {
		_, err = fmt.Fprintf(w, "%s does not match %s\n", i.Name(), pattern)
	}
	return err
}

func renameName(w io.Writer, name, from, to string) error {
	i, err := index.New(name, 1)
	if err != nil {
		return err
	}
	renamed, err := i.Rename(from, to)
	if err != nil {
		return err
	}
	if !renamed {
		_, err = fmt.Fprintf(w, "%s does not match %s, unchanged\n", i.Name(), from)
		return err
	}
	_, err = fmt.Fprintln(w, i.Name())
	return err
}
