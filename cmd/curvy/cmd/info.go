package cmd

import (
	"fmt"

	"github.com/choneface/curvy/pkg/bundle"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Print bundle metadata",
		Long: `Print the metadata of an app bundle: app name, version and
author, resolved skin and font paths, and the action table.`,
		Usage: "curvy info <bundle-dir>",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info requires exactly one bundle path")
	}

	b, err := bundle.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("name:      %s\n", b.Meta.Name)
	fmt.Printf("version:   %s\n", b.Meta.Version)
	fmt.Printf("author:    %s\n", b.Meta.Author)
	fmt.Printf("skin:      %s\n", b.SkinPath())
	fmt.Printf("font:      %s (size %.1f)\n", b.FontPath(), b.FontSize)
	if names := b.ActionNames(); len(names) > 0 {
		fmt.Println("actions:")
		for _, name := range names {
			fmt.Printf("  %-12s %s\n", name, b.Script(name))
		}
	}
	return nil
}
