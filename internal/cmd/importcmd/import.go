// Package importcmd provides the import command for weave.
package importcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyweave/weave/internal/view"
	"github.com/storyweave/weave/pkg/story"
)

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Convert an HTML page into story Markdown",
		Long: `Convert an HTML page into Markdown story source.

Markup produced by a previous build round-trips: section containers
become {{Id}} declarations and engine anchors become link macros.
Other HTML converts to plain Markdown, ready to be annotated.`,
		Example: `  # Print the converted source
  weave import page.html

  # Write it to a file
  weave import page.html -o chapter1.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runImport(args[0], output, noColor)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write Markdown to a file instead of stdout")

	return cmd
}

func runImport(path, output string, noColor bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	markdown, err := story.ImportHTML(string(data))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", path, err)
	}

	if output == "" {
		fmt.Print(markdown)
		return nil
	}
	if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
		return err
	}
	view.NewRenderer(false, noColor).Success(fmt.Sprintf("imported %s to %s", path, output))
	return nil
}
