package view

// RenamePhase is the lifecycle of one optimistic inline rename.
type RenamePhase int

const (
	// RenameConfirmed: the displayed value matches the last persisted value.
	RenameConfirmed RenamePhase = iota
	// RenamePending: a new value is displayed but the persistence call has
	// not resolved yet.
	RenamePending
	// RenameRolledBack: the persistence call failed; the display reverted to
	// the last confirmed snapshot and the server error is attached.
	RenameRolledBack
)

// OptimisticName tracks the displayed name of an inline rename. The display
// updates immediately on submit attempt; Confirm promotes it to the new
// confirmed snapshot, Rollback restores the previous one.
type OptimisticName struct {
	confirmed string
	display   string
	phase     RenamePhase

	fieldError string
	bannerMsg  string
}

// NewOptimisticName starts from a known-good persisted value.
func NewOptimisticName(current string) *OptimisticName {
	return &OptimisticName{confirmed: current, display: current}
}

// Begin applies newName to the display before the persistence call resolves.
func (o *OptimisticName) Begin(newName string) {
	o.display = newName
	o.phase = RenamePending
	o.fieldError = ""
	o.bannerMsg = ""
}

// Confirm records that the persistence call succeeded; the displayed value
// becomes the confirmed snapshot.
func (o *OptimisticName) Confirm() {
	o.confirmed = o.display
	o.phase = RenameConfirmed
}

// Rollback restores the last confirmed snapshot. A field-scoped server error
// re-attaches to the name input; anything else becomes a generic banner.
func (o *OptimisticName) Rollback(fieldError, bannerMsg string) {
	o.display = o.confirmed
	o.phase = RenameRolledBack
	o.fieldError = fieldError
	o.bannerMsg = bannerMsg
}

func (o *OptimisticName) Display() string    { return o.display }
func (o *OptimisticName) Phase() RenamePhase { return o.phase }
func (o *OptimisticName) FieldError() string { return o.fieldError }
func (o *OptimisticName) BannerMsg() string  { return o.bannerMsg }
