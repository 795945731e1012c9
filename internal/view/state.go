package view

import (
	"time"

	"github.com/justsurfingit/applytrack/internal/models"
)

// Phase is the top-level state of the list-management surface.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawerOpen
	PhaseDetailOpen
)

// DrawerMode distinguishes the create drawer from the edit drawer.
type DrawerMode int

const (
	DrawerCreate DrawerMode = iota
	DrawerEdit
)

// FocusTarget names the control that keyboard focus returns to when a drawer
// closes: the add button for create, the opening row's edit control for edit.
type FocusTarget struct {
	AddButton bool
	RowID     string
}

// DetailClearDelay is how long the closed detail view keeps its record before
// clearing it, so content does not disappear mid close-transition. Closing is
// immediate for interaction purposes; only the displayed record lingers.
const DetailClearDelay = 300 * time.Millisecond

// ListSurface models the interaction state of a single list-management
// surface: the view toggle plus the create/edit drawer, the detail popup,
// and the two-step delete confirmation. All transitions are synchronous;
// time only matters for the deferred detail clear, so the current clock is
// passed in where it is needed.
type ListSurface struct {
	phase      Phase
	drawerMode DrawerMode
	editRowID  string

	detail         *models.Application
	detailClosedAt time.Time

	armedDeleteID string
}

// NewListSurface starts in the idle state with the flat view.
func NewListSurface() *ListSurface {
	return &ListSurface{phase: PhaseIdle}
}

func (s *ListSurface) Phase() Phase { return s.phase }

// OpenCreateDrawer moves idle -> drawer-open(create).
func (s *ListSurface) OpenCreateDrawer() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseDrawerOpen
	s.drawerMode = DrawerCreate
	return true
}

// OpenEditDrawer moves idle -> drawer-open(edit) for the given row.
func (s *ListSurface) OpenEditDrawer(rowID string) bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseDrawerOpen
	s.drawerMode = DrawerEdit
	s.editRowID = rowID
	return true
}

// CloseDrawer returns to idle and reports where keyboard focus belongs.
func (s *ListSurface) CloseDrawer() (FocusTarget, bool) {
	if s.phase != PhaseDrawerOpen {
		return FocusTarget{}, false
	}
	target := FocusTarget{AddButton: s.drawerMode == DrawerCreate, RowID: s.editRowID}
	s.phase = PhaseIdle
	s.editRowID = ""
	return target, true
}

// OpenDetail moves idle -> detail-open for a row opened outside its edit and
// delete controls.
func (s *ListSurface) OpenDetail(app *models.Application) bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseDetailOpen
	s.detail = app
	s.detailClosedAt = time.Time{}
	return true
}

// CloseDetail returns to idle immediately; the displayed record is retained
// until DetailClearDelay elapses.
func (s *ListSurface) CloseDetail(now time.Time) bool {
	if s.phase != PhaseDetailOpen {
		return false
	}
	s.phase = PhaseIdle
	s.detailClosedAt = now
	return true
}

// DisplayedDetail reports the record the detail view should still render at
// now, or nil once the clear delay has elapsed after closing.
func (s *ListSurface) DisplayedDetail(now time.Time) *models.Application {
	if s.detail == nil {
		return nil
	}
	if s.phase == PhaseDetailOpen {
		return s.detail
	}
	if now.Sub(s.detailClosedAt) >= DetailClearDelay {
		s.detail = nil
		return nil
	}
	return s.detail
}

// SetDetail replaces the record shown in an open detail view, e.g. after an
// optimistic status change is reflected into it.
func (s *ListSurface) SetDetail(app *models.Application) bool {
	if s.phase != PhaseDetailOpen {
		return false
	}
	s.detail = app
	return true
}

// ArmDelete reveals the confirmation affordance for a row. Arming a different
// row replaces the previous pending confirmation.
func (s *ListSurface) ArmDelete(rowID string) bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.armedDeleteID = rowID
	return true
}

// ConfirmDelete resolves the pending confirmation and reports which row the
// destructive action applies to.
func (s *ListSurface) ConfirmDelete() (string, bool) {
	if s.armedDeleteID == "" {
		return "", false
	}
	id := s.armedDeleteID
	s.armedDeleteID = ""
	return id, true
}

// CancelDelete drops the pending confirmation with no side effect.
func (s *ListSurface) CancelDelete() {
	s.armedDeleteID = ""
}

// ArmedDelete reports the row currently awaiting delete confirmation, if any.
func (s *ListSurface) ArmedDelete() (string, bool) {
	return s.armedDeleteID, s.armedDeleteID != ""
}
