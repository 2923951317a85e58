package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/model"
	"github.com/idilsaglam/sports/internal/resources"
	"github.com/idilsaglam/sports/internal/snapshot"
	"github.com/idilsaglam/sports/internal/ui"
)

func listCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the current list",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			items := e.data.Items()
			snap, ok, err := snapshot.Load(e.state)
			if err != nil {
				return fmt.Errorf("state %s: %w", e.state.Path(), err)
			}
			if ok {
				items = snapshot.Restore(snap)
			}
			printList(cmd.OutOrStdout(), e.data, items, all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also show dismissed sports")
	return cmd
}

func printList(w io.Writer, data *resources.Data, items []model.Item, all bool) {
	t := ui.Current()
	original := data.Items()
	gone := dismissed(original, items)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Sports"),
		ui.C(t.Success, t.Bullet), len(items),
		ui.C(t.Pending, t.Dismissed), len(gone),
		ui.C(t.Accent, "Total"), len(original),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(len(items), len(original), 28)), ""}
	lines = append(lines, itemLines(data, items)...)
	if all {
		lines = append(lines, "", ui.C(t.Accent, "Dismissed"))
		if len(gone) == 0 {
			lines = append(lines, ui.C(t.Muted, "(none)"))
		} else {
			lines = append(lines, itemLines(data, gone)...)
		}
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: run `sports` to reorder, `sports reset` to start over"))
	ui.Panel(w, lines)
}

func itemLines(data *resources.Data, items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no sports")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		desc := truncate(it.Description, 60)
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)), data.Glyph(it.Image), it.Title, ui.C(t.Muted, desc)))
	}
	return out
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// dismissed returns originals missing from current, counting duplicates.
func dismissed(original, current []model.Item) []model.Item {
	left := make(map[model.Item]int, len(current))
	for _, it := range current {
		left[it]++
	}
	var out []model.Item
	for _, it := range original {
		if left[it] > 0 {
			left[it]--
			continue
		}
		out = append(out, it)
	}
	return out
}
