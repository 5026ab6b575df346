package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/go-drift/shadcn/internal/showcase"
	"github.com/go-drift/shadcn/pkg/backend/terminal"
	"github.com/go-drift/shadcn/pkg/theme"
)

func newDemoCmd(root *rootFlags) *cobra.Command {
	var scene string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse every overlay widget in the terminal",
		Long: "Browse every overlay widget in the terminal.\n\nScenes: " + strings.Join(showcase.Names(), ", ") +
			"\n\nClick a scene in the sidebar, Escape closes overlays, Ctrl-C quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			gallery := showcase.NewGallery()
			if scene != "" && !gallery.Select(scene) {
				return newCommandError("start demo", fmt.Sprintf("unknown scene %q", scene), fmt.Errorf("have %s", strings.Join(showcase.Names(), ", ")), "")
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return newCommandError("start demo", "opening terminal", err, "Run from an interactive terminal.")
			}
			if err := screen.Init(); err != nil {
				return newCommandError("start demo", "initializing terminal", err, "Check TERM is set.")
			}
			defer screen.Fini()
			screen.EnableMouse()

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			th := theme.TerminalTheme()
			host := terminal.New(screen)
			host.Background = th.Palette.Background
			theme.Use(host.Context(), th)

			if err := host.Run(ctx, gallery.Draw); err != nil {
				return newCommandError("run demo", "terminal loop", err, "")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scene, "scene", "", "Scene selected at start")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
