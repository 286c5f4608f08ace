// Package initcmd provides the init command for weave.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/storyweave/weave/internal/project"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		title  string
		author string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new story project",
		Long: `Create a new story project: a weave.yml project file and a starter
source file with an opening section declaration.

Run without flags for an interactive setup.`,
		Example: `  # Interactive setup in the current directory
  weave init

  # Scaffold into a new directory
  weave init my-story --title "My Story"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, title, author)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "story title")
	cmd.Flags().StringVar(&author, "author", "", "story author")

	return cmd
}

func runInit(dir, prefillTitle, prefillAuthor string) error {
	projectPath := filepath.Join(dir, project.DefaultFile)

	// Check if a project already exists
	if _, err := os.Stat(projectPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Project already exists").
			Description(fmt.Sprintf("Overwrite %s?", projectPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	p := &project.Project{
		Title:  prefillTitle,
		Author: prefillAuthor,
		Start:  "Start",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("The story's title, shown in the browser tab").
				Placeholder("An Interactive Tale").
				Value(&p.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Author (optional)").
				Value(&p.Author),

			huh.NewInput().
				Title("Opening section").
				Description("Id of the section the story starts in").
				Placeholder("Start").
				Value(&p.Start).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("an opening section is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	if err := p.Save(projectPath); err != nil {
		return err
	}

	storyPath := filepath.Join(dir, "story.md")
	if _, err := os.Stat(storyPath); os.IsNotExist(err) {
		starter := fmt.Sprintf(`{{%[1]s}}

Your story starts here. Declare more sections with {{Id}} alone in a
paragraph, and link to them like this: [onward]({@%[1]s}).
`, p.Start)
		if err := os.WriteFile(storyPath, []byte(starter), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("\nProject saved to %s\n", projectPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  weave build")
	return nil
}
