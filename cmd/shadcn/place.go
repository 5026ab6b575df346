package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/placement"
)

type placeOptions struct {
	trigger     string
	boundary    string
	side        string
	align       string
	sticky      string
	sideOffset  float64
	alignOffset float64
	width       float64
	maxHeight   float64
	padding     float64
	flip        bool
	noConstrain bool
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	flippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func newPlaceCmd() *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where overlay content lands next to a trigger",
		Example: `  shadcn place --trigger 700,20,80,32 --width 288 --side bottom --align end
  shadcn place --trigger 100,560,80,32 --width 200 --max-height 100 --flip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request()
			if err != nil {
				return newCommandError("place content", "parsing flags", err, "Rects are x,y,width,height, for example 10,20,80,32.")
			}
			res := placement.Resolve(req)
			fmt.Fprintln(cmd.OutOrStdout(), formatPlacement(req, res))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.trigger, "trigger", "", "Trigger rect x,y,width,height (required)")
	f.StringVar(&opts.boundary, "boundary", "0,0,800,600", "Boundary rect x,y,width,height")
	f.StringVar(&opts.side, "side", "bottom", "Requested side (top, right, bottom, left)")
	f.StringVar(&opts.align, "align", "center", "Cross-axis alignment (start, center, end)")
	f.StringVar(&opts.sticky, "sticky", "partial", "Cross-axis overflow (partial, always)")
	f.Float64Var(&opts.sideOffset, "side-offset", 4, "Gap between trigger and content")
	f.Float64Var(&opts.alignOffset, "align-offset", 0, "Cross-axis nudge")
	f.Float64Var(&opts.width, "width", 0, "Content width")
	f.Float64Var(&opts.maxHeight, "max-height", 0, "Content height")
	f.Float64Var(&opts.padding, "padding", 0, "Gap kept from every boundary edge")
	f.BoolVar(&opts.flip, "flip", false, "Flip to the opposite side when it has more room")
	f.BoolVar(&opts.noConstrain, "no-constrain", false, "Leave content where it overflows the boundary")
	_ = cmd.MarkFlagRequired("trigger")

	return cmd
}

func (o *placeOptions) request() (placement.Request, error) {
	trigger, err := parseRect(o.trigger)
	if err != nil {
		return placement.Request{}, fmt.Errorf("--trigger: %w", err)
	}
	boundary, err := parseRect(o.boundary)
	if err != nil {
		return placement.Request{}, fmt.Errorf("--boundary: %w", err)
	}
	side, err := placement.ParseSide(o.side)
	if err != nil {
		return placement.Request{}, err
	}
	align, err := placement.ParseAlign(o.align)
	if err != nil {
		return placement.Request{}, err
	}
	sticky, err := placement.ParseSticky(o.sticky)
	if err != nil {
		return placement.Request{}, err
	}
	return placement.Request{
		Trigger:         trigger,
		Boundary:        boundary,
		Side:            side,
		Align:           align,
		SideOffset:      o.sideOffset,
		AlignOffset:     o.alignOffset,
		Width:           o.width,
		MaxHeight:       o.maxHeight,
		Constrain:       !o.noConstrain,
		AvoidCollisions: o.flip,
		Padding:         graphics.EdgeInsetsAll(o.padding),
		Sticky:          sticky,
	}, nil
}

// parseRect reads "x,y,width,height".
func parseRect(s string) (graphics.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return graphics.Rect{}, fmt.Errorf("want 4 comma separated numbers, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return graphics.Rect{}, fmt.Errorf("invalid number %q", p)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return graphics.Rect{}, fmt.Errorf("negative size in %q", s)
	}
	return graphics.RectFromLTWH(v[0], v[1], v[2], v[3]), nil
}

func formatRect(r graphics.Rect) string {
	return fmt.Sprintf("%s,%s,%s,%s", num(r.Left), num(r.Top), num(r.Width()), num(r.Height()))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPlacement(req placement.Request, res placement.Result) string {
	side := res.Side.String()
	if res.Flipped {
		side = flippedStyle.Render(side + " (flipped from " + req.Side.String() + ")")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("FIELD", "VALUE").
		Row("trigger", formatRect(req.Trigger)).
		Row("boundary", formatRect(req.Boundary)).
		Row("requested", req.Side.String()+" "+req.Align.String()).
		Row("side", side).
		Row("rect", formatRect(res.Rect))
	return t.Render()
}
