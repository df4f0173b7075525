package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/phase"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml>",
	Short: "Check a level pack file",
	Long: `Parse a level pack YAML file and report problems.

A valid file can be played with 'platformer play --phases <file>'.

Example:
  platformer validate ./my-pack.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cat, err := phase.LoadFile(path)
	if err != nil {
		if hint := validationHint(err); hint != "" {
			return fmt.Errorf("%w\n%s", err, hint)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: OK\n", path)
	fmt.Fprintf(out, "  Pack:   %s\n", cat.DisplayTitle())
	fmt.Fprintf(out, "  Phases: %d\n", cat.Len())
	for i, p := range cat.Phases {
		fmt.Fprintf(out, "  %d. %d platforms, %d items, %d enemies\n",
			i+1, len(p.Platforms), len(p.Items), len(p.Enemies))
	}
	return nil
}

// validationHint explains how to fix a catalog validation error.
func validationHint(err error) string {
	switch {
	case errors.Is(err, phase.ErrNoPhases):
		return "A pack needs at least one entry under 'phases'."
	case errors.Is(err, phase.ErrNegativeSize):
		return "Platform 'w' and 'h' must not be negative."
	case errors.Is(err, phase.ErrUnnamed):
		return "Set a top-level 'name' for the pack."
	}
	return ""
}
