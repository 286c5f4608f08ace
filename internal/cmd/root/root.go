// Package root provides the root command for weave.
package root

import (
	"github.com/spf13/cobra"

	"github.com/storyweave/weave/internal/cmd/buildcmd"
	"github.com/storyweave/weave/internal/cmd/completion"
	"github.com/storyweave/weave/internal/cmd/importcmd"
	"github.com/storyweave/weave/internal/cmd/initcmd"
	"github.com/storyweave/weave/internal/version"
)

// NewCmdRoot creates the root command for weave.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weave",
		Short: "Compile Markdown stories into playable hypertext",
		Long: `weave compiles Markdown annotated with story macros into a single
browser-playable HTML document.

Sections are declared with {{Id}} alone in a paragraph. Links can
navigate ({@Id}), call functions ({#fn}), or expand in place
({@Id:inline}); bare references in text ({@Id}, {#fn}, {$var}) become
expansion points the story engine fills in at play time.

Get started by running: weave init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().Bool("json", false, "machine-readable output")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("weave version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(buildcmd.NewCmdBuild())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
