package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-drift/shadcn/internal/config"
	"github.com/go-drift/shadcn/internal/showcase"
	"github.com/go-drift/shadcn/pkg/backend/raster"
	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/logging"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/theme"
)

type renderOptions struct {
	scene  string
	out    string
	theme  string
	width  int
	height int
	watch  bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a showcase scene with its overlay open to a PNG file",
		Example: `  shadcn render --scene hover-card --out hover-card.png
  shadcn render --scene dialog --theme ./zinc.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := opts.resolve(root.dir)
			if err != nil {
				return newCommandError("render", "resolving configuration", err, "Run 'shadcn render --help' for the list of flags.")
			}
			if resolved.LogLevel != "" && !cmd.Flag("log-level").Changed {
				if err := applyLogLevel(cmd, resolved.LogLevel, root.human); err != nil {
					return newCommandError("render", "configuring logging", err, "")
				}
			}
			if err := renderScene(resolved); err != nil {
				return newCommandError("render", fmt.Sprintf("scene %q", resolved.Scene), err, "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved.Output)
			if !opts.watch {
				return nil
			}
			if isBuiltinTheme(resolved.Theme) {
				return newCommandError("watch", "builtin themes have no file", fmt.Errorf("theme %q", resolved.Theme), "Pass --theme with a theme file path.")
			}
			return watchTheme(contextOf(cmd), resolved, func() {
				if err := renderScene(resolved); err != nil {
					logging.L().Error().Err(err).Str("theme", resolved.Theme).Msg("re-render failed")
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved.Output)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.scene, "scene", "", "Scene to render (see 'shadcn demo')")
	f.StringVarP(&opts.out, "out", "o", "", "Output PNG path (default <scene>.png)")
	f.StringVar(&opts.theme, "theme", "", "Builtin theme (light, dark) or theme file")
	f.IntVar(&opts.width, "width", 0, "Viewport width in pixels")
	f.IntVar(&opts.height, "height", 0, "Viewport height in pixels")
	f.BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the theme file changes")

	return cmd
}

// resolve layers flags over shadcn.yaml over defaults.
func (o *renderOptions) resolve(dir string) (*config.Resolved, error) {
	if o.scene != "" {
		if _, ok := showcase.Lookup(o.scene); !ok {
			return nil, &errors.Error{
				Op:   "render",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("unknown scene %q", o.scene),
			}
		}
	}
	r, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if o.scene != "" {
		if r.Output == r.Scene+".png" {
			r.Output = o.scene + ".png"
		}
		r.Scene = o.scene
	}
	if o.out != "" {
		r.Output = o.out
	}
	if o.theme != "" {
		r.Theme = o.theme
	}
	if o.width > 0 {
		r.Width = o.width
	}
	if o.height > 0 {
		r.Height = o.height
	}
	return r, nil
}

// renderScene plays the scene in a headless harness and paints the final
// frame.
func renderScene(r *config.Resolved) error {
	th, err := config.LoadTheme(r.Theme)
	if err != nil {
		return err
	}
	scene, ok := showcase.Lookup(r.Scene)
	if !ok {
		return &errors.Error{Op: "render", Kind: errors.KindConfig, Err: fmt.Errorf("unknown scene %q", r.Scene)}
	}

	viewport := graphics.RectFromLTWH(0, 0, float64(r.Width), float64(r.Height))
	h := uitest.NewHarnessWith(raster.Measurer{}, viewport)
	theme.Use(h.Context(), th)

	page := scene.Open()
	if err := page.Play(h); err != nil {
		return err
	}

	canvas := raster.NewCanvas(r.Width, r.Height)
	canvas.Clear(th.Palette.Background)
	canvas.Paint(h.Output().DisplayList)
	if err := canvas.WritePNG(r.Output); err != nil {
		return err
	}
	logging.L().Info().Str("scene", r.Scene).Str("theme", th.Name).Str("out", r.Output).Msg("rendered")
	return nil
}

func isBuiltinTheme(name string) bool {
	switch name {
	case "light", "dark", "terminal":
		return true
	}
	return false
}

// watchTheme calls rerender after every write to the theme file until ctx
// is done. The parent directory is watched so editors that replace the
// file on save keep triggering.
func watchTheme(ctx context.Context, r *config.Resolved, rerender func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("watch", "creating file watcher", err, "")
	}
	defer watcher.Close()

	target, err := filepath.Abs(r.Theme)
	if err != nil {
		return newCommandError("watch", "resolving theme path", err, "")
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return newCommandError("watch", fmt.Sprintf("watching %s", filepath.Dir(target)), err, "Check the directory exists and is readable.")
	}
	logging.L().Info().Str("theme", target).Msg("watching theme")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				logging.L().Debug().Str("op", ev.Op.String()).Msg("theme changed")
				rerender()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.L().Warn().Err(err).Msg("watch error")
		}
	}
}
