package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
)

type calcOptions struct {
	size     string
	handle   string
	delta    string
	shift    bool
	others   []string
	previous string
	json     bool
}

type calcResult struct {
	Handle   resize.HandleID `json:"handle"`
	Original geom.Box        `json:"original"`
	Box      geom.Box        `json:"box"`
	Snapped  bool            `json:"snapped"`
}

func newCalcCmd() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the box a drag would produce",
		Long: `Run the resize calculation for a single drag without opening the editor.

The result box holds left/top offsets (non-zero only for handles on the
left or top edge) and the proposed width and height. The minimum size and
snap threshold come from the config and the global flags.`,
		Example: `  # Drag the bottom-right corner 80px right
  dragresize calc --size 240x160 --handle br --delta 80,0

  # Same drag with shift held (no aspect ratio)
  dragresize calc --size 240x160 --handle br --delta 80,0 --shift

  # Snap against other images
  dragresize calc --size 100x100 --handle rm --delta 6,0 --other 104x100 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			calc := resize.Calculator{MinSize: cfg.Resize.MinSize, SnapThreshold: cfg.SnapThreshold()}
			return runCalc(cmd.OutOrStdout(), calc, opts)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "Original size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.handle, "handle", string(resize.BottomRight), "Handle: tl, tm, tr, lm, rm, bl, bm, br")
	cmd.Flags().StringVar(&opts.delta, "delta", "0,0", "Pointer movement as DX,DY")
	cmd.Flags().BoolVar(&opts.shift, "shift", false, "Hold shift (free aspect ratio on corners)")
	cmd.Flags().StringSliceVar(&opts.others, "other", nil, "Other image size as WIDTHxHEIGHT (repeatable, in document order)")
	cmd.Flags().StringVar(&opts.previous, "previous", "", "Previously accepted size as WIDTHxHEIGHT for the jitter guard")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func runCalc(w io.Writer, calc resize.Calculator, opts calcOptions) error {
	width, height, err := parseSize(opts.size)
	if err != nil {
		return fmt.Errorf("invalid --size: %w", err)
	}
	handle, err := resize.ParseHandle(opts.handle)
	if err != nil {
		return fmt.Errorf("invalid --handle: %w", err)
	}
	dx, dy, err := parsePair(opts.delta)
	if err != nil {
		return fmt.Errorf("invalid --delta: %w", err)
	}

	var others []geom.Box
	for _, o := range opts.others {
		ow, oh, err := parseSize(o)
		if err != nil {
			return fmt.Errorf("invalid --other %q: %w", o, err)
		}
		others = append(others, geom.Box{Width: ow, Height: oh})
	}

	var previous geom.Box
	if opts.previous != "" {
		pw, ph, err := parseSize(opts.previous)
		if err != nil {
			return fmt.Errorf("invalid --previous: %w", err)
		}
		previous = geom.Box{Width: pw, Height: ph}
	}

	original := geom.Box{Width: width, Height: height}
	drag := &resize.DragState{
		Handle: handle,
		Delta:  geom.Point{X: dx, Y: dy},
		Mods:   resize.Modifiers{Shift: opts.shift},
	}
	box := calc.Compute(original, drag, others, previous)

	res := calcResult{Handle: handle, Original: original, Box: box}
	for _, o := range others {
		if o.Width == box.Width && o.Height == box.Height {
			res.Snapped = calc.Snapping()
			break
		}
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprintf(w, "%s %g×%g -> %g×%g offset %g,%g", handle, width, height, box.Width, box.Height, box.Left, box.Top)
	if err == nil && res.Snapped {
		_, err = fmt.Fprint(w, " (snapped)")
	}
	if err == nil {
		_, err = fmt.Fprintln(w)
	}
	return err
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (float64, float64, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width: %w", err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %q", s)
	}
	return width, height, nil
}

// parsePair parses X,Y.
func parsePair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
