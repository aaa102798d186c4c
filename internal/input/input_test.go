package input

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/app"
	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// With the default 8x16 cell, image a covers columns 2-31 and rows 2-11;
// its bottom-right handle sits in cell (31, 11).
func newTestEditor(t *testing.T) (*app.Editor, *document.Image, *document.Image) {
	t.Helper()
	a := document.NewImage("a.png", "A", geom.Box{Left: 16, Top: 32, Width: 240, Height: 160})
	b := document.NewImage("b.png", "B", geom.Box{Left: 400, Top: 32, Width: 120, Height: 160})
	e := app.New(document.New("Test", a, b), "", nil, nil)
	e.Width, e.Height = 100, 30
	return e, a, b
}

func click(x, y int, btn tea.MouseButton, mod tea.KeyMod) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: btn, Mod: mod}
}

func motion(x, y int, mod tea.KeyMod) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft, Mod: mod}
}

func release(x, y int, mod tea.KeyMod) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft, Mod: mod}
}

func send(e *app.Editor, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = HandleInput(msg, e)
	}
	return cmd
}

func TestClickSelection(t *testing.T) {
	tests := []struct {
		name       string
		msgs       []tea.Msg
		wantSel    string
		wantTarget string
	}{
		{
			name:       "left click shows handles",
			msgs:       []tea.Msg{click(10, 5, tea.MouseLeft, 0)},
			wantSel:    "A",
			wantTarget: "A",
		},
		{
			name:       "click on empty page hides",
			msgs:       []tea.Msg{click(10, 5, tea.MouseLeft, 0), click(90, 25, tea.MouseLeft, 0)},
			wantSel:    "",
			wantTarget: "",
		},
		{
			name:       "right click leaves the resizer alone",
			msgs:       []tea.Msg{click(10, 5, tea.MouseLeft, 0), click(55, 5, tea.MouseRight, 0)},
			wantSel:    "B",
			wantTarget: "A",
		},
		{
			name:       "status bar clicks are ignored",
			msgs:       []tea.Msg{click(10, 5, tea.MouseLeft, 0), click(10, 29, tea.MouseLeft, 0)},
			wantSel:    "A",
			wantTarget: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEditor(t)
			send(e, tt.msgs...)

			sel := ""
			if img := e.Doc.Selected(); img != nil {
				sel = img.Alt()
			}
			if sel != tt.wantSel {
				t.Errorf("selected = %q, want %q", sel, tt.wantSel)
			}
			target := ""
			if el := e.Resizer.Target(); el != nil {
				target = el.(*document.Image).Alt()
			}
			if target != tt.wantTarget {
				t.Errorf("target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}

func TestDragCommits(t *testing.T) {
	tests := []struct {
		name string
		mod  tea.KeyMod
		want geom.Box
	}{
		{"ratio kept", 0, geom.Box{Left: 16, Top: 32, Width: 320, Height: 213}},
		{"shift frees ratio", tea.ModShift, geom.Box{Left: 16, Top: 32, Width: 320, Height: 160}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, a, _ := newTestEditor(t)
			send(e, click(10, 5, tea.MouseLeft, 0))

			send(e, click(31, 11, tea.MouseLeft, tt.mod))
			if e.Resizer.State() != resizer.StateDragging {
				t.Fatalf("state = %v, want dragging", e.Resizer.State())
			}
			if e.Doc.Cursor() != "dragging-br" {
				t.Errorf("cursor = %q", e.Doc.Cursor())
			}

			send(e, motion(41, 11, tt.mod))
			cmd := send(e, release(41, 11, tt.mod))

			if a.Box() != tt.want {
				t.Errorf("box = %v, want %v", a.Box(), tt.want)
			}
			if cmd == nil || e.Notification == nil {
				t.Error("expected a resize notification")
			}
			if e.Resizer.State() != resizer.StateShown || e.Resizer.Target() != a {
				t.Errorf("handles not restored: state %v", e.Resizer.State())
			}
			if e.Doc.Locked() || e.Doc.Cursor() != "" {
				t.Error("selection lock or cursor marker left behind")
			}
			if !e.Doc.Modified() {
				t.Error("document should be modified")
			}
		})
	}
}

func TestEscapeCancelsDrag(t *testing.T) {
	e, a, _ := newTestEditor(t)
	send(e, click(10, 5, tea.MouseLeft, 0), click(31, 11, tea.MouseLeft, 0), motion(41, 11, 0))
	steps := e.Doc.History().Len()

	send(e, tea.KeyPressMsg{Code: tea.KeyEscape})

	if a.Box().Width != 240 {
		t.Errorf("box changed: %v", a.Box())
	}
	if e.Resizer.State() != resizer.StateShown {
		t.Errorf("state = %v, want shown", e.Resizer.State())
	}
	if e.Doc.History().Len() != steps {
		t.Error("cancel recorded history")
	}

	// Release after the cancel is a no-op.
	send(e, release(41, 11, 0))
	if a.Box().Width != 240 {
		t.Errorf("release after cancel committed: %v", a.Box())
	}

	// A second escape clears the selection.
	send(e, tea.KeyPressMsg{Code: tea.KeyEscape})
	if e.Doc.Selected() != nil || e.Resizer.State() != resizer.StateHidden {
		t.Error("escape while idle should clear the selection")
	}
}

func TestMotionWithoutDragIgnored(t *testing.T) {
	e, a, _ := newTestEditor(t)
	send(e, click(10, 5, tea.MouseLeft, 0), motion(60, 20, 0), release(60, 20, 0))
	if a.Box().Width != 240 || e.Doc.Modified() {
		t.Errorf("box = %v", a.Box())
	}
}

func TestUndoRedoKeys(t *testing.T) {
	e, a, _ := newTestEditor(t)
	send(e, click(10, 5, tea.MouseLeft, 0), click(31, 11, tea.MouseLeft, tea.ModShift), release(41, 11, tea.ModShift))
	if a.Box().Width != 320 {
		t.Fatalf("drag not committed: %v", a.Box())
	}

	send(e, tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl})
	if a.Box().Width != 240 {
		t.Errorf("after undo: %v", a.Box())
	}
	if e.Resizer.Target() != a || e.Resizer.OriginalBox().Width != 240 {
		t.Error("handles should re-anchor on the restored box")
	}

	send(e, tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	if a.Box().Width != 320 {
		t.Errorf("after redo: %v", a.Box())
	}

	if cmd := send(e, tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}); cmd == nil {
		t.Error("redo past the end should notify")
	}
}

func TestCycleSelectionKeys(t *testing.T) {
	e, a, b := newTestEditor(t)

	send(e, tea.KeyPressMsg{Code: tea.KeyTab})
	if e.Resizer.Target() != a {
		t.Fatalf("first tab should select a")
	}
	send(e, tea.KeyPressMsg{Code: tea.KeyTab})
	if e.Resizer.Target() != b {
		t.Fatalf("second tab should select b")
	}
	send(e, tea.KeyPressMsg{Code: tea.KeyTab})
	if e.Resizer.Target() != a {
		t.Fatalf("tab should wrap to a")
	}
	send(e, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if e.Resizer.Target() != b {
		t.Fatalf("shift+tab should go back to b")
	}
}

func TestSaveKey(t *testing.T) {
	e, _, _ := newTestEditor(t)
	ctrlS := tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

	send(e, ctrlS)
	if e.Notification == nil || e.Notification.Type != "error" {
		t.Fatalf("saving without a path should report an error, got %+v", e.Notification)
	}

	e.Path = filepath.Join(t.TempDir(), "doc.toml")
	send(e, ctrlS)
	if e.Notification == nil || e.Notification.Type != "success" {
		t.Fatalf("save notification = %+v", e.Notification)
	}
	if _, err := os.Stat(e.Path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestToggleSnapKey(t *testing.T) {
	e, _, _ := newTestEditor(t)
	s := tea.KeyPressMsg{Code: 's', Text: "s"}

	send(e, s)
	if e.Resizer.Calculator().Snapping() {
		t.Fatal("snapping should be off")
	}
	send(e, s)
	if got := e.Resizer.Calculator().SnapThreshold; got != 7 {
		t.Fatalf("threshold = %g, want 7", got)
	}
}

func TestHelpAndQuitKeys(t *testing.T) {
	e, _, _ := newTestEditor(t)
	help := tea.KeyPressMsg{Code: '?', Text: "?"}

	send(e, help)
	if !e.ShowHelp {
		t.Fatal("help should be shown")
	}
	// Other keys only close the overlay.
	send(e, tea.KeyPressMsg{Code: tea.KeyTab})
	if e.ShowHelp || e.Doc.Selected() != nil {
		t.Fatal("tab should only close help")
	}

	cmd := send(e, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
}

func TestWheelScrolls(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.Height = 5

	send(e, tea.MouseWheelMsg{Button: tea.MouseWheelDown}, tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if e.ScrollY != 2 {
		t.Fatalf("ScrollY = %d, want 2", e.ScrollY)
	}
	for range 10 {
		send(e, tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	}
	if e.ScrollY != 0 {
		t.Fatalf("ScrollY = %d, want 0", e.ScrollY)
	}
}
