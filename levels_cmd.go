package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := levels.Names()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No levels bundled.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Levels"))
		for _, name := range names {
			lvl, err := levels.Load(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeLevel(name, lvl))
		}
		return nil
	},
}

func describeLevel(name string, lvl *levels.Level) string {
	line := labelStyle.Render(name)
	for i, m := range lvl.Maps {
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s (%d cols)", m.Name, m.Columns)
	}
	return line
}
