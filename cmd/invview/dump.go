//go:build cgo

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/layout"
	"github.com/appengine-ltd/invview/internal/view"
)

type dumpFlags struct {
	down    int
	right   int
	switchP bool
	find    string
}

func newDumpCmd(root *rootFlags) *cobra.Command {
	flags := &dumpFlags{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the sorted panels and their layout as text",
		Long: `dump opens the inventory (or the --loot container), optionally moves the
cursor, runs one frame and prints every shown panel slot by slot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.load()
			if err != nil {
				return err
			}
			defer e.Close()
			frame, err := runDump(e, flags)
			if err != nil {
				return err
			}
			return writeDump(cmd.OutOrStdout(), e.world, frame)
		},
	}
	cmd.Flags().IntVar(&flags.down, "down", 0, "Rows to move the cursor before printing (negative moves up)")
	cmd.Flags().IntVar(&flags.right, "right", 0, "Columns to move the cursor before printing (negative moves left)")
	cmd.Flags().BoolVar(&flags.switchP, "switch", false, "Focus the other panel before moving")
	cmd.Flags().StringVar(&flags.find, "find", "", "Filter the focused panel by name")
	return cmd
}

func runDump(e *env, flags *dumpFlags) (view.Frame, error) {
	previewOpts, _ := view.PreviewFromConfig(e.cfg)
	s := game.NewSession(e.world, view.Options{
		Layout:  view.LayoutFromConfig(e.cfg),
		Preview: previewOpts,
		Logger:  e.log,
	})
	var err error
	if e.loot != item.NoEntity {
		err = s.Loot(e.loot)
	} else {
		err = s.ToggleInventory()
	}
	if err != nil {
		return view.Frame{}, err
	}
	if _, err := s.Step(0); err != nil {
		return view.Frame{}, err
	}
	if flags.switchP {
		s.View().Trigger(view.ActionSwitchPanel)
		if _, err := s.Step(0); err != nil {
			return view.Frame{}, err
		}
	}
	if flags.find != "" {
		if _, err := s.Execute("find " + flags.find); err != nil {
			return view.Frame{}, err
		}
	}
	s.View().AddDelta(flags.down, flags.right)
	return s.Step(0)
}

func writeDump(w io.Writer, world *game.World, frame view.Frame) error {
	if !frame.Visible() {
		_, err := fmt.Fprintln(w, "view closed")
		return err
	}
	fmt.Fprintf(w, "state %s, focus %s\n", frame.State, frame.Focus)
	for _, pf := range frame.Panels {
		win := pf.Cursor.Window()
		fmt.Fprintf(w, "\n%s panel: %s (%d items)\n", pf.Panel, world.Name(pf.Owner), len(pf.List))
		fmt.Fprintf(w, "  rect %.0f,%.0f %.0fx%.0f  grid %dx%d  window %d+%d\n",
			pf.Rect.X, pf.Rect.Y, pf.Rect.Width, pf.Rect.Height,
			pf.Grid.Columns, pf.Grid.Rows, win.Offset, win.Count)
		if sel, ok := pf.Selected(); ok {
			fmt.Fprintf(w, "  selected %s\n", sel.Label())
		}
		for i, slot := range pf.Slots {
			it, ok := pf.ItemAt(i)
			if !ok {
				fmt.Fprintf(w, "  r%d c%d  %6.0f,%-6.0f -\n", slot.Row, slot.Column, slot.Rect.X, slot.Rect.Y)
				continue
			}
			mark := " "
			if slot.Item.Flags.Has(layout.DrawSelected) {
				mark = ">"
			}
			equipped := ""
			if slot.Item.Flags.Has(layout.DrawEquipped) {
				equipped = " [equipped]"
			}
			fmt.Fprintf(w, "%s r%d c%d  %6.0f,%-6.0f %s%s\n", mark, slot.Row, slot.Column, slot.Rect.X, slot.Rect.Y, it.Label(), equipped)
		}
	}
	return nil
}
