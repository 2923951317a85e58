// Package tui is the full-screen sports list.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sports/internal/controller"
	"github.com/idilsaglam/sports/internal/gesture"
	"github.com/idilsaglam/sports/internal/lifecycle"
	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/resources"
	"github.com/idilsaglam/sports/internal/snapshot"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Screen hosts the list. It is a tea.Model and a lifecycle.Screen.
type Screen struct {
	data  *resources.Data
	ctrl  *controller.Controller
	rows  *rowView
	keys  keyMap
	mouse bool

	tracker gesture.Tracker
	grabbed *bool

	width, height int
}

var (
	_ tea.Model        = (*Screen)(nil)
	_ lifecycle.Screen = (*Screen)(nil)
)

// NewScreen returns an uncreated screen; call lifecycle.Start before use.
func NewScreen(data *resources.Data, mouse bool) *Screen {
	return &Screen{
		data:    data,
		keys:    defaultKeyMap(),
		mouse:   mouse,
		grabbed: new(bool),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// OnCreate builds the store, attaches the renderer and loads static data.
func (s *Screen) OnCreate(saved lifecycle.Bundle) {
	s.ctrl = controller.New(s.data.Items())
	s.rows = newRowView(s.data.Glyph, s.grabbed, s.keys.shortHelp)
	s.tracker = gesture.Tracker{RowHeight: rowDelegate{}.Height() + rowDelegate{}.Spacing()}
	s.ctrl.Attach(s.rows)
	s.ctrl.Load()
	s.resize()
	logger.Info("screen created (saved state: %t)", saved != nil)
}

// OnSaveState captures the list into out.
func (s *Screen) OnSaveState(out lifecycle.Bundle) error {
	snap := snapshot.Capture(s.ctrl.Rows())
	if err := snapshot.Save(out, snap); err != nil {
		return err
	}
	logger.Info("saved %d items", snap.Len())
	return nil
}

// OnRestoreState repopulates the existing store from saved, if it holds a
// snapshot. The renderer stays attached to the same store and repaints.
func (s *Screen) OnRestoreState(saved lifecycle.Bundle) error {
	snap, ok, err := snapshot.Load(saved)
	if err != nil {
		return err
	}
	if !ok {
		logger.Debug("no snapshot to restore")
		return nil
	}
	s.ctrl.Replace(snapshot.Restore(snap))
	logger.Info("restored %d items", snap.Len())
	return nil
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.resize()
		return s, nil

	case tea.MouseMsg:
		if s.mouse && s.handleMouse(msg) {
			return s, s.rows.drain()
		}

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			if *s.grabbed && msg.String() == "esc" {
				*s.grabbed = false
				return s, nil
			}
			return s, tea.Quit
		}
		if s.handleKey(msg) {
			return s, s.rows.drain()
		}
	}

	var cmd tea.Cmd
	s.rows.list, cmd = s.rows.list.Update(msg)
	return s, tea.Batch(cmd, s.rows.drain())
}

// handleKey reports whether msg was consumed.
func (s *Screen) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, s.keys.Grab):
		*s.grabbed = !*s.grabbed && s.rows.Len() > 0
		return true
	case key.Matches(msg, s.keys.DragUp):
		s.drag(-1)
		return true
	case key.Matches(msg, s.keys.DragDown):
		s.drag(1)
		return true
	case *s.grabbed && key.Matches(msg, s.keys.Up):
		s.drag(-1)
		return true
	case *s.grabbed && key.Matches(msg, s.keys.Down):
		s.drag(1)
		return true
	case key.Matches(msg, s.keys.SwipeLeft):
		s.swipe(gesture.Left)
		return true
	case key.Matches(msg, s.keys.SwipeRight):
		s.swipe(gesture.Right)
		return true
	case key.Matches(msg, s.keys.Reset):
		*s.grabbed = false
		s.ctrl.Reset()
		s.rows.list.Select(0)
		return true
	}
	return false
}

func (s *Screen) drag(delta int) {
	from := s.rows.list.Index()
	to := from + delta
	if s.rows.Len() == 0 || to < 0 || to >= s.rows.Len() {
		return
	}
	s.ctrl.OnReposition(from, to)
	s.rows.list.Select(to)
}

func (s *Screen) swipe(dir gesture.Direction) {
	if s.rows.Len() == 0 {
		return
	}
	*s.grabbed = false
	s.ctrl.OnDismiss(s.rows.list.Index(), dir)
}

func (s *Screen) handleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			idx := s.rowAt(msg.Y)
			s.tracker.Press(idx, s.rows.Len(), msg.X, msg.Y)
			if idx >= 0 {
				s.rows.list.Select(idx)
			}
			return true
		case tea.MouseButtonWheelUp:
			s.rows.list.CursorUp()
			return true
		case tea.MouseButtonWheelDown:
			s.rows.list.CursorDown()
			return true
		}
	case tea.MouseActionMotion:
		if !s.tracker.Active() {
			return false
		}
		s.tracker.Motion(msg.X, msg.Y, s.ctrl)
		if s.tracker.Active() {
			s.rows.list.Select(s.tracker.Current())
		}
		return true
	case tea.MouseActionRelease:
		s.tracker.Release()
		return true
	}
	return false
}

// rowAt maps a screen line to a list index, or -1.
func (s *Screen) rowAt(y int) int {
	d := rowDelegate{}
	top := panelFrameHeight/2 + lipgloss.Height(s.header())
	p := s.rows.list.Paginator
	return hitRow(y-top, d.Height(), d.Spacing(), p.Page, p.PerPage, s.rows.Len())
}

// hitRow maps a line offset inside the list body to an absolute index.
// Lines falling in row spacing or past the page map to -1.
func hitRow(rel, height, spacing, page, perPage, total int) int {
	stride := height + spacing
	if rel < 0 || stride <= 0 || rel%stride >= height {
		return -1
	}
	slot := rel / stride
	if perPage > 0 && slot >= perPage {
		return -1
	}
	idx := page*perPage + slot
	if idx >= total {
		return -1
	}
	return idx
}

func (s *Screen) resize() {
	w := s.width - panelFrameWidth
	h := s.height - panelFrameHeight - lipgloss.Height(s.header())
	s.rows.list.SetSize(max(w, 1), max(h, 1))
}

func (s *Screen) header() string {
	total := len(s.ctrl.Original())
	title := titleStyle.Render("Sports") + "   " +
		accentStyle.Render(fmt.Sprintf("%d", s.rows.Len())) +
		mutedStyle.Render(fmt.Sprintf(" of %d", total))
	status := mutedStyle.Render("drag to reorder, swipe to dismiss")
	if *s.grabbed && s.rows.Len() > 0 {
		if r, ok := s.rows.list.SelectedItem().(row); ok {
			status = pendingStyle.Render("moving " + r.item.Title + " (space to drop)")
		}
	} else if s.rows.Len() == 0 {
		status = pendingStyle.Render("nothing left, press r to reset")
	}
	return title + "\n" + status + "\n"
}

func (s *Screen) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left, s.header(), s.rows.list.View())
	return panelStyle.Render(content)
}

// Titles returns the painted row titles in order.
func (s *Screen) Titles() []string { return s.rows.Titles() }
