package cmd

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/bilingui/skillrings/internal/rings"
	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one frame of the skill rings to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := resolveStats(cmd)
		if err != nil {
			return err
		}

		size, _ := cmd.Flags().GetInt("size")
		if size < 16 {
			return fmt.Errorf("size must be at least 16, got %d", size)
		}

		selected := rings.NoSelection
		if name, _ := cmd.Flags().GetString("select"); name != "" {
			sk, ok := stats.SkillByName(name)
			if !ok {
				return fmt.Errorf("unknown skill %q (try: speaking, reading, grammar, listening, writing)", name)
			}
			selected = int(sk.Index)
		}

		bg, _ := colorful.Hex(theme.CanvasBackground)
		canvas := rings.NewCanvas(size, bg)
		canvas.Paint(rings.Render(st, 1.0, selected, float64(canvas.Size())))
		fmt.Fprintln(cmd.OutOrStdout(), canvas.String())
		return nil
	},
}

func init() {
	renderCmd.Flags().Int("size", 64, "Canvas size in pixels (two pixel rows per terminal row)")
	renderCmd.Flags().String("select", "", "Highlight one skill ring by name")
}
