// Package buildcmd provides the build command for weave.
package buildcmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/storyweave/weave/internal/build"
	"github.com/storyweave/weave/internal/project"
	"github.com/storyweave/weave/internal/view"
)

type buildOptions struct {
	dir     string
	project string
	output  string
	json    bool
	noColor bool
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Compile the story project",
		Long: `Compile every source file of a story project into a single playable
HTML document.

All sources are attempted even when some fail, so one run reports every
macro error in the project. The document is written to the project's
output directory together with its declared assets.`,
		Example: `  # Build the project in the current directory
  weave build

  # Build a specific project
  weave build path/to/story

  # Override the output directory
  weave build -o dist`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.json, _ = cmd.Flags().GetBool("json")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.dir = "."
			if len(args) == 1 {
				opts.dir = args[0]
			}
			return runBuild(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.project, "project", "p", "", "project file (default: weave.yml in the project dir)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory override")

	return cmd
}

func runBuild(opts *buildOptions) error {
	r := view.NewRenderer(opts.json, opts.noColor)

	path := opts.project
	if path == "" {
		path = filepath.Join(opts.dir, project.DefaultFile)
	}
	p, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load project: %w (run 'weave init' to create one)", err)
	}
	if opts.output != "" {
		p.Output = opts.output
	}

	res, err := build.Run(p)
	if opts.json && res != nil {
		if jerr := r.RenderJSON(res); jerr != nil {
			return jerr
		}
		return err
	}
	if err != nil {
		if res != nil {
			for _, f := range res.Failures {
				r.Error(f.Error())
			}
		}
		return err
	}

	r.Success(fmt.Sprintf("compiled %d files", len(res.Files)))
	r.Summary("Output", res.Output)
	return nil
}
