//go:build cgo

package main

import (
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/invview/internal/gui"
	"github.com/appengine-ltd/invview/internal/ui"
	"github.com/appengine-ltd/invview/internal/view"
)

func newGUICmd(root *rootFlags) *cobra.Command {
	var assets string
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the inventory in a raylib window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.load()
			if err != nil {
				return err
			}
			defer e.Close()
			return gui.Run(gui.Options{
				Config:   e.cfg,
				World:    e.world,
				Loot:     e.loot,
				AssetDir: assets,
				Logger:   e.log,
			})
		},
	}
	cmd.Flags().StringVar(&assets, "assets", "assets/ui", "Directory with fonts and skin textures")
	return cmd
}

func newTUICmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the inventory in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.load()
			if err != nil {
				return err
			}
			defer e.Close()
			previewOpts, spin := view.PreviewFromConfig(e.cfg)
			return ui.Run(ui.Options{
				World:     e.world,
				Loot:      e.loot,
				Preview:   previewOpts,
				SpinSpeed: spin,
				Logger:    e.log,
			})
		},
	}
}
