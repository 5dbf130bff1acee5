package usecase

import (
	"context"
	"time"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// DraftState is the lifecycle of an open editing session.
type DraftState string

const (
	// DraftClean means the draft matches the last persisted document.
	DraftClean DraftState = "clean"
	// DraftDirty means the draft has unsaved edits.
	DraftDirty DraftState = "dirty"
	// DraftSaving means a save is in flight; further saves are rejected
	// until it settles.
	DraftSaving DraftState = "saving"
)

// ListOp is a single structural edit on a list field of a draft.
type ListOp struct {
	Action string `json:"action" validate:"required,oneof=add update remove"`
	Index  int    `json:"index"`
	Value  string `json:"value"`
}

// DraftStatus is the observable state of an editing session.
type DraftStatus struct {
	ResidenceID     uuid.UUID         `json:"residenceId"`
	State           DraftState        `json:"state"`
	AutosaveEnabled bool              `json:"autosaveEnabled"`
	Draft           *entity.Residence `json:"draft"`
	LastSavedAt     *time.Time        `json:"lastSavedAt,omitempty"`
	LastSaveError   string            `json:"lastSaveError,omitempty"`
}

// DraftUsecase manages server-side editing sessions for admin users. Each
// residence has at most one open session. Edits mark the session dirty only
// when the draft actually differs from the pristine copy; every dirtying
// edit resets the autosave timer, and a save that completes while new edits
// arrived leaves the session dirty.
type DraftUsecase interface {
	// Open loads the residence and starts (or returns) its editing session.
	Open(ctx context.Context, residenceID uuid.UUID) (*DraftStatus, error)

	// Status returns the current session state without touching it.
	Status(residenceID uuid.UUID) (*DraftStatus, error)

	// Update replaces the draft document with the submitted one.
	Update(residenceID uuid.UUID, draft *entity.Residence) (*DraftStatus, error)

	// EditList applies a structural list edit to one of the draft's list
	// fields (services, facilities, images, certifications and the like).
	EditList(residenceID uuid.UUID, field string, op ListOp) (*DraftStatus, error)

	// SetSideChannel stages contact lists managed outside the main form.
	SetSideChannel(residenceID uuid.UUID, field string, values []string) (*DraftStatus, error)

	// SetAutosave toggles the autosave timer for the session.
	SetAutosave(residenceID uuid.UUID, enabled bool) (*DraftStatus, error)

	// Save persists the draft through the admin save pipeline. It fails
	// with a conflict while another save for the session is in flight.
	Save(ctx context.Context, residenceID uuid.UUID) (*SaveResult, error)

	// Close discards the session and its pending edits.
	Close(residenceID uuid.UUID) error
}
