// Package app provides the dragresize editor model: a bubbletea program that
// draws a document of images and lets the user resize them with the mouse.
package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/config"
	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/logging"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// ErrNoPath is returned by Save when the document was not loaded from a file.
var ErrNoPath = errors.New("document has no file path")

// Notification is a short status message shown in the status bar.
type Notification struct {
	Message string
	Type    string // "info", "success", "error"
	seq     int
}

// Editor represents the main application state.
type Editor struct {
	Doc     *document.Document
	Path    string
	Config  *config.UserConfig
	Keys    *config.KeybindRegistry
	Resizer *resizer.Resizer
	Watcher *resizer.Watcher
	Log     *log.Logger

	// Terminal size in cells.
	Width  int
	Height int

	// ScrollY is the number of document rows scrolled off the top.
	ScrollY int

	Focused      bool
	ShowHelp     bool
	Notification *Notification
	notifySeq    int

	// snapThreshold remembers the configured threshold while snapping is
	// toggled off.
	snapThreshold float64
}

// New creates an editor for doc. path may be empty for an unsaved document.
func New(doc *document.Document, path string, cfg *config.UserConfig, logger *log.Logger) *Editor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	e := &Editor{
		Doc:           doc,
		Path:          path,
		Config:        cfg,
		Keys:          config.NewKeybindRegistry(cfg),
		Log:           logger,
		Focused:       true,
		snapThreshold: cfg.SnapThreshold(),
	}

	e.Resizer = resizer.New(doc, resizerOptions(cfg, logger))
	e.Watcher = resizer.NewWatcher(e.Resizer)

	doc.SetHistoryLimit(cfg.Document.HistoryLimit)
	doc.SetHooks(document.Hooks{
		BeforeSnapshot: e.Watcher.BeforeSnapshot,
		AfterSnapshot:  e.Watcher.AfterSnapshot,
	})
	return e
}

func resizerOptions(cfg *config.UserConfig, logger *log.Logger) resizer.Options {
	return resizer.Options{
		Calculator: resize.Calculator{
			MinSize:       cfg.Resize.MinSize,
			SnapThreshold: cfg.SnapThreshold(),
		},
		Metrics: resize.Metrics{
			Size:  cfg.Resize.HandleSize,
			Inset: cfg.Resize.HandleInset,
		},
		PreviewOpacity: cfg.Resize.PreviewOpacity,
		Logger:         logger,
	}
}

// =============================================================================
// Coordinates
// =============================================================================

// cellSize returns the document pixels covered by one terminal cell.
func (e *Editor) cellSize() (w, h float64) {
	return e.Config.Display.CellWidth, e.Config.Display.CellHeight
}

// UsableHeight returns the number of rows available to the document.
func (e *Editor) UsableHeight() int {
	return max(e.Height-config.StatusBarHeight, 0)
}

// CellToDoc converts a terminal cell to the document point at its centre.
func (e *Editor) CellToDoc(x, y int) geom.Point {
	cw, ch := e.cellSize()
	return geom.Point{
		X: (float64(x) + 0.5) * cw,
		Y: (float64(y+e.ScrollY) + 0.5) * ch,
	}
}

// DocToCell converts a document point to the terminal cell containing it.
func (e *Editor) DocToCell(p geom.Point) (x, y int) {
	cw, ch := e.cellSize()
	return floorDiv(p.X, cw), floorDiv(p.Y, ch) - e.ScrollY
}

// BoxToCells returns the cell rectangle covering b, at least one cell in
// each direction.
func (e *Editor) BoxToCells(b geom.Box) (x, y, w, h int) {
	cw, ch := e.cellSize()
	x, y = e.DocToCell(b.Origin())
	w = max(int(geom.Round(b.Width/cw)), 1)
	h = max(int(geom.Round(b.Height/ch)), 1)
	return x, y, w, h
}

// HandleSlop is how far outside a handle a pointer still grabs it: half a
// cell, so any cell a handle is drawn in hits it.
func (e *Editor) HandleSlop() float64 {
	cw, ch := e.cellSize()
	return max(cw, ch) / 2
}

func floorDiv(v, d float64) int {
	q := v / d
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// =============================================================================
// Actions
// =============================================================================

// SelectImage makes img the document selection and runs the activation
// policy. A nil img clears the selection.
func (e *Editor) SelectImage(img *document.Image, trigger resizer.Trigger) {
	if !e.Doc.Select(img) {
		e.Log.Debug("selection locked, ignoring select")
		return
	}
	e.Watcher.SelectionChanged(trigger)
}

// CycleSelection moves the selection forward or backward through the
// document order.
func (e *Editor) CycleSelection(step int) {
	images := e.Doc.ImageList()
	if len(images) == 0 {
		return
	}
	i := slices.Index(images, e.Doc.Selected())
	switch {
	case i < 0 && step < 0:
		i = len(images) - 1
	case i < 0:
		i = 0
	default:
		i = (i + step + len(images)) % len(images)
	}
	e.SelectImage(images[i], resizer.Trigger{})
}

// Cancel abandons a running drag and puts the handles back on the
// untouched image, or clears the selection when idle. It reports whether
// a drag was cancelled.
func (e *Editor) Cancel() bool {
	if e.Resizer.State() == resizer.StateDragging {
		e.Resizer.CancelDrag()
		e.Watcher.SelectionChanged(resizer.Trigger{})
		return true
	}
	e.SelectImage(nil, resizer.Trigger{})
	return false
}

// ToggleSnap turns snapping to other image sizes on or off. It reports
// whether snapping is now enabled.
func (e *Editor) ToggleSnap() bool {
	calc := e.Resizer.Calculator()
	if calc.Snapping() {
		calc.SnapThreshold = 0
	} else {
		calc.SnapThreshold = e.snapThreshold
		if calc.SnapThreshold <= 0 {
			calc.SnapThreshold = resize.DefaultSnapThreshold
		}
	}
	e.Resizer.SetCalculator(calc)
	return calc.Snapping()
}

// Undo reverts the last committed resize.
func (e *Editor) Undo() bool {
	if e.Resizer.State() == resizer.StateDragging {
		return false
	}
	return e.Doc.Undo()
}

// Redo reapplies an undone resize.
func (e *Editor) Redo() bool {
	if e.Resizer.State() == resizer.StateDragging {
		return false
	}
	return e.Doc.Redo()
}

// Save writes the document back to its file.
func (e *Editor) Save() error {
	if e.Path == "" {
		return ErrNoPath
	}
	if err := e.Doc.Save(e.Path); err != nil {
		return fmt.Errorf("failed to save %s: %w", e.Path, err)
	}
	e.Log.Info("document saved", "path", e.Path)
	return nil
}

// Scroll moves the viewport by rows, clamped to the document.
func (e *Editor) Scroll(rows int) {
	_, ch := e.cellSize()
	docRows := int(geom.Round(e.Doc.Bounds().Bottom()/ch)) + 1
	maxScroll := max(docRows-e.UsableHeight(), 0)
	e.ScrollY = min(max(e.ScrollY+rows, 0), maxScroll)
}

// Notify shows a status message and returns its sequence number.
func (e *Editor) Notify(message, notifType string) int {
	e.notifySeq++
	e.Notification = &Notification{Message: message, Type: notifType, seq: e.notifySeq}
	return e.notifySeq
}

// clearNotification removes the notification if seq is still current.
func (e *Editor) clearNotification(seq int) {
	if e.Notification != nil && e.Notification.seq == seq {
		e.Notification = nil
	}
}

// Shutdown tears the editor down before the program exits.
func (e *Editor) Shutdown() {
	e.Resizer.CancelDrag()
	e.Watcher.ModeUnload()
}

// notificationDuration is a var so tests can shorten it.
var notificationDuration = config.NotificationDuration

// settleDelay returns the viewport resize debounce.
func (e *Editor) settleDelay() time.Duration {
	if d := e.Config.ResizeDebounce(); d > 0 {
		return d
	}
	return resizer.DefaultResizeDebounce
}
