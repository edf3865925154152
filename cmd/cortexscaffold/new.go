package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cortexscaffold/cortexscaffold/app"
	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
	"github.com/cortexscaffold/cortexscaffold/domain/project"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new project",
	Long: `Scaffold a new FastAPI project with an interactive wizard.

Every answer can be supplied as a flag instead; --yes skips the
remaining prompts and accepts the defaults. With --inspire, a free-text
ideas file seeds the defaults and the generated README.

Examples:
  cortexscaffold new
  cortexscaffold new --name "Task Tracker" --modules tasks,users --yes
  cortexscaffold new --inspire ideas.txt --yes
  cortexscaffold new --name demo --modules api_v1 --dry-run`,
	RunE: runNew,
}

var (
	newInspire     string
	newName        string
	newModules     []string
	newDescription string
	newAuthor      string
	newDir         string
	newGit         bool
	newGitHub      bool
	newPrivate     bool
	newVenv        bool
	newYes         bool
	newDryRun      bool
)

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newInspire, "inspire", "", "path to a free-text ideas file")
	newCmd.Flags().StringVar(&newName, "name", "", "project name")
	newCmd.Flags().StringSliceVar(&newModules, "modules", nil, "module names (comma separated)")
	newCmd.Flags().StringVar(&newDescription, "description", "", "project description")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "license author")
	newCmd.Flags().StringVar(&newDir, "dir", ".", "parent directory for the project")
	newCmd.Flags().BoolVar(&newGit, "git", true, "initialize a git repository")
	newCmd.Flags().BoolVar(&newGitHub, "github", false, "create a GitHub repository")
	newCmd.Flags().BoolVar(&newPrivate, "private", false, "make the GitHub repository private")
	newCmd.Flags().BoolVar(&newVenv, "venv", true, "create a Python virtual environment")
	newCmd.Flags().BoolVar(&newYes, "yes", false, "accept defaults without prompting")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "print the planned tree without writing anything")
}

func runNew(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Defaults start from config and may be refined by extraction.
	name := a.Config.Defaults.Name
	modules := a.Config.Defaults.Modules
	description := a.Config.Defaults.Description
	author := a.Config.Defaults.Author

	var ideas string
	if newInspire != "" {
		data, err := os.ReadFile(newInspire)
		if err != nil {
			return fmt.Errorf("read ideas file: %w", err)
		}
		ideas = string(data)

		fmt.Println("Extracting project information from ideas...")
		ext, warnings, err := a.Service.Inspire(ctx, ideas)
		if err != nil {
			return fmt.Errorf("extract from ideas: %w", err)
		}
		for _, w := range warnings {
			fmt.Printf("  %s %s\n", crossMark, w)
		}
		if ext.Name != "" {
			name = ext.Name
		}
		if len(ext.Modules) > 0 {
			modules = ext.Modules
		}
		if ext.Description != "" {
			description = ext.Description
		}
	}

	// Flags beat extraction and config; prompts fill whatever remains.
	if cmd.Flags().Changed("name") {
		name = newName
	} else if !newYes {
		name = prompt(reader, "Project name", name)
	}

	if cmd.Flags().Changed("modules") {
		modules = newModules
	} else if !newYes {
		input := prompt(reader, "Modules (comma separated)", strings.Join(modules, ", "))
		modules = parseModules(input)
	}

	if cmd.Flags().Changed("description") {
		description = newDescription
	} else if !newYes {
		description = prompt(reader, "Description", description)
	}

	if cmd.Flags().Changed("author") {
		author = newAuthor
	} else if !newYes {
		author = prompt(reader, "License author", author)
	}

	req := app.Request{
		Name:        name,
		Description: description,
		Modules:     modules,
		Author:      author,
		BaseDir:     newDir,
		Ideas:       ideas,
	}

	if newDryRun {
		return printPlan(a.Service, req)
	}

	req.Options = project.Options{
		InitGit:      newGit,
		CreateRemote: newGitHub,
		Private:      newPrivate,
		CreateVenv:   newVenv,
	}
	if !newYes {
		if !cmd.Flags().Changed("venv") {
			req.Options.CreateVenv = confirm(reader, "Create virtual environment?", newVenv)
		}
		if !cmd.Flags().Changed("git") {
			req.Options.InitGit = confirm(reader, "Initialize git repository?", newGit)
		}
		if !cmd.Flags().Changed("github") {
			req.Options.CreateRemote = confirm(reader, "Create GitHub repository?", newGitHub)
		}
		if req.Options.CreateRemote && !cmd.Flags().Changed("private") {
			req.Options.Private = confirm(reader, "Private repository?", newPrivate)
		}
	}

	res, err := a.Service.Scaffold(ctx, req)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			fmt.Println()
			for _, issue := range verr.Issues {
				fmt.Printf("  %s %s\n", crossMark, issue)
			}
			return fmt.Errorf("project request is invalid")
		}
		return err
	}

	printSummary(res, req.Options)
	return nil
}

// printPlan renders the artifact list a run would produce, without
// touching the filesystem.
func printPlan(svc *app.ScaffoldService, req app.Request) error {
	spec, arts, err := svc.Plan(req)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			fmt.Println()
			for _, issue := range verr.Issues {
				fmt.Printf("  %s %s\n", crossMark, issue)
			}
			return fmt.Errorf("project request is invalid")
		}
		return err
	}

	fmt.Printf("Planned %s (%d artifacts)\n\n", spec.KebabName, len(arts))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tKIND\tSIZE")
	fmt.Fprintln(w, "----\t----\t----")
	for _, art := range arts {
		switch art.Kind {
		case artifact.KindDir:
			fmt.Fprintf(w, "%s/\tdir\t-\n", art.RelativePath)
		case artifact.KindBinary:
			fmt.Fprintf(w, "%s\tbinary\t%d\n", art.RelativePath, len(art.Payload))
		default:
			fmt.Fprintf(w, "%s\tfile\t%d\n", art.RelativePath, len(art.Payload))
		}
	}
	w.Flush()

	fmt.Println("\nNothing was written. Re-run without --dry-run to scaffold.")
	return nil
}

// printSummary reports the finished run and the usual first commands.
func printSummary(res *app.Result, opts project.Options) {
	fmt.Println()
	fmt.Printf("%s Created %s at %s (%d artifacts)\n", checkMark, res.Spec.KebabName, res.Path, res.Artifacts)

	if res.Structure.OK {
		fmt.Printf("%s Structure verified\n", checkMark)
	} else {
		for _, missing := range res.Structure.Errors {
			fmt.Printf("%s Missing: %s\n", crossMark, missing)
		}
	}

	if res.CloneURL != "" {
		fmt.Printf("%s Remote repository: %s\n", checkMark, res.CloneURL)
	}

	for _, w := range res.Warnings {
		fmt.Printf("%s %s\n", crossMark, w)
	}

	steps := []string{"cd " + res.Spec.KebabName}
	if opts.CreateVenv {
		steps = append(steps, "source .venv/bin/activate")
	}
	steps = append(steps, "pip install -r requirements.txt", "python main.py")

	fmt.Println()
	fmt.Println("Next steps:")
	for i, step := range steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}

func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("? %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("? %s: ", label)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}

func confirm(reader *bufio.Reader, message string, defaultYes bool) bool {
	if defaultYes {
		fmt.Printf("? %s [Y/n]: ", message)
	} else {
		fmt.Printf("? %s [y/N]: ", message)
	}

	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))

	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

func parseModules(input string) []string {
	var modules []string
	for _, part := range strings.Split(input, ",") {
		if p := strings.TrimSpace(part); p != "" {
			modules = append(modules, p)
		}
	}
	return modules
}
