package impl

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/lifecycle"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// draftSession is one open editing session. All fields are guarded by the
// service mutex.
type draftSession struct {
	residenceID uuid.UUID

	// pristine mirrors the last persisted document; draft carries the edits.
	pristine *entity.Residence
	draft    *entity.Residence

	// side stages contact lists managed outside the main form. It is handed
	// to the save pipeline and cleared on success.
	side *usecase.SideChannel

	state    usecase.DraftState
	autosave bool
	timer    *time.Timer

	// pendingEdits records edits that arrived while a save was in flight,
	// so the session lands dirty instead of clean when the save settles.
	pendingEdits bool

	lastSavedAt   *time.Time
	lastSaveError string
}

// draftService implements the DraftUsecase interface with in-memory sessions.
// One session per residence; sessions die with the process, the persisted
// documents do not.
type draftService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*draftSession

	admin         usecase.AdminUsecase
	autosaveDelay time.Duration
	logger        *slog.Logger
}

// NewDraftService is the constructor for draftService.
func NewDraftService(
	admin usecase.AdminUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DraftUsecase {
	return &draftService{
		sessions:      make(map[uuid.UUID]*draftSession),
		admin:         admin,
		autosaveDelay: cfg.AutosaveDelay(),
		logger:        logger,
	}
}

// Open loads the residence and starts its editing session. Opening an
// already-open session returns it untouched, so a reloaded admin tab does
// not lose pending edits.
func (srv *draftService) Open(ctx context.Context, residenceID uuid.UUID) (*usecase.DraftStatus, error) {
	srv.mu.Lock()
	if session, ok := srv.sessions[residenceID]; ok {
		status := srv.statusLocked(session)
		srv.mu.Unlock()

		return status, nil
	}
	srv.mu.Unlock()

	residence, err := srv.admin.GetResidence(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// A concurrent Open may have won the race while we were loading.
	if session, ok := srv.sessions[residenceID]; ok {
		return srv.statusLocked(session), nil
	}

	session := &draftSession{
		residenceID: residenceID,
		pristine:    residence.Clone(),
		draft:       residence.Clone(),
		state:       usecase.DraftClean,
		autosave:    true,
	}
	srv.sessions[residenceID] = session

	return srv.statusLocked(session), nil
}

// Status returns the current session state without touching it.
func (srv *draftService) Status(residenceID uuid.UUID) (*usecase.DraftStatus, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[residenceID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrDraftNotOpen, "no editing session for residence")
	}

	return srv.statusLocked(session), nil
}

// Update replaces the draft document with the submitted one. The residence
// id is not editable.
func (srv *draftService) Update(residenceID uuid.UUID, draft *entity.Residence) (*usecase.DraftStatus, error) {
	return srv.edit(residenceID, func(session *draftSession) error {
		next := draft.Clone()
		next.ID = session.residenceID
		next.CreatedAt = session.pristine.CreatedAt
		next.UpdatedAt = session.pristine.UpdatedAt
		decorate(next)

		session.draft = next

		return nil
	})
}

// EditList applies a structural edit to one of the draft's list fields.
func (srv *draftService) EditList(residenceID uuid.UUID, field string, op usecase.ListOp) (*usecase.DraftStatus, error) {
	return srv.edit(residenceID, func(session *draftSession) error {
		list := listField(session.draft, field)
		if list == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown list field "+field)
		}

		switch op.Action {
		case "add":
			*list = entity.ListInsert(*list, op.Value)
		case "update":
			*list = entity.ListUpdate(*list, op.Index, op.Value)
		case "remove":
			*list = entity.ListRemove(*list, op.Index)
		default:
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown list action "+op.Action)
		}

		return nil
	})
}

// SetSideChannel stages contact lists managed outside the main form. The
// values are mirrored into the draft so dirty tracking sees them, and kept
// aside so the save pipeline can tell touched fields from untouched ones.
func (srv *draftService) SetSideChannel(residenceID uuid.UUID, field string, values []string) (*usecase.DraftStatus, error) {
	return srv.edit(residenceID, func(session *draftSession) error {
		if session.side == nil {
			session.side = &usecase.SideChannel{}
		}

		staged := append([]string(nil), values...)

		switch field {
		case "phones":
			session.side.Phones = &staged
			session.draft.AdditionalPhones = staged
		case "whatsapps":
			session.side.Whatsapps = &staged
			session.draft.AdditionalWhatsapps = staged
		case "emails":
			session.side.Emails = &staged
			session.draft.Emails = staged
		case "addresses":
			session.side.Addresses = &staged
			session.draft.AdditionalAddresses = staged
		case "cities":
			session.side.Cities = &staged
			session.draft.AdditionalCities = staged
		default:
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown side channel field "+field)
		}

		return nil
	})
}

// SetAutosave toggles the autosave timer for the session.
func (srv *draftService) SetAutosave(residenceID uuid.UUID, enabled bool) (*usecase.DraftStatus, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[residenceID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrDraftNotOpen, "no editing session for residence")
	}

	session.autosave = enabled
	if enabled && session.state == usecase.DraftDirty {
		srv.armTimerLocked(session)
	} else if !enabled {
		stopTimerLocked(session)
	}

	return srv.statusLocked(session), nil
}

// Save persists the draft through the admin save pipeline. Only one save per
// session may be in flight; concurrent callers get a conflict. Saving a
// clean session is a no-op.
func (srv *draftService) Save(ctx context.Context, residenceID uuid.UUID) (*usecase.SaveResult, error) {
	srv.mu.Lock()

	session, ok := srv.sessions[residenceID]
	if !ok {
		srv.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrDraftNotOpen, "no editing session for residence")
	}

	if session.state == usecase.DraftSaving {
		srv.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrSaveInProgress, "a save is already running")
	}

	if session.state == usecase.DraftClean {
		result := &usecase.SaveResult{Residence: session.draft.Clone()}
		srv.mu.Unlock()

		return result, nil
	}

	session.state = usecase.DraftSaving
	session.pendingEdits = false
	stopTimerLocked(session)

	snapshot := session.draft.Clone()
	side := session.side
	srv.mu.Unlock()

	result, err := srv.admin.SaveResidence(ctx, snapshot, side)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		session.state = usecase.DraftDirty
		session.lastSaveError = err.Error()
		srv.armTimerLocked(session)

		return nil, err
	}

	now := time.Now()
	session.pristine = result.Residence.Clone()
	session.lastSavedAt = &now
	session.lastSaveError = ""
	session.side = nil

	if session.pendingEdits {
		srv.reconcileLocked(session)
	} else {
		// Absorb what the pipeline changed: deduped phones, normalized
		// ratio, fresh coordinates.
		session.draft = session.pristine.Clone()
		session.state = usecase.DraftClean
	}

	return result, nil
}

// Close discards the session and its pending edits. Closing a session that
// is not open is a no-op.
func (srv *draftService) Close(residenceID uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if session, ok := srv.sessions[residenceID]; ok {
		stopTimerLocked(session)
		delete(srv.sessions, residenceID)
	}

	return nil
}

// edit runs a mutation on the session's draft and reconciles the state
// machine afterwards.
func (srv *draftService) edit(residenceID uuid.UUID, mutate func(*draftSession) error) (*usecase.DraftStatus, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[residenceID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrDraftNotOpen, "no editing session for residence")
	}

	if err := mutate(session); err != nil {
		return nil, err
	}

	if session.state == usecase.DraftSaving {
		session.pendingEdits = true
	} else {
		srv.reconcileLocked(session)
	}

	return srv.statusLocked(session), nil
}

// reconcileLocked recomputes dirtiness from the documents themselves. An
// edit that round-trips back to the pristine value leaves the session clean
// and disarms the timer.
func (srv *draftService) reconcileLocked(session *draftSession) {
	decorate(session.draft)

	if reflect.DeepEqual(session.draft, session.pristine) {
		session.state = usecase.DraftClean
		stopTimerLocked(session)

		return
	}

	session.state = usecase.DraftDirty
	srv.armTimerLocked(session)
}

// armTimerLocked (re)starts the autosave countdown. Every dirtying edit
// lands here, so the timer measures quiet time since the last edit.
func (srv *draftService) armTimerLocked(session *draftSession) {
	if !session.autosave {
		return
	}

	stopTimerLocked(session)

	residenceID := session.residenceID
	session.timer = time.AfterFunc(srv.autosaveDelay, func() {
		srv.autosaveFire(residenceID)
	})
}

func stopTimerLocked(session *draftSession) {
	if session.timer != nil {
		session.timer.Stop()
		session.timer = nil
	}
}

// autosaveFire runs when a session has been dirty and untouched for the
// full autosave delay.
func (srv *draftService) autosaveFire(residenceID uuid.UUID) {
	srv.mu.Lock()
	session, ok := srv.sessions[residenceID]
	if !ok || !session.autosave || session.state != usecase.DraftDirty {
		srv.mu.Unlock()

		return
	}
	srv.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := srv.Save(ctx, residenceID); err != nil {
		srv.logger.Warn("Autosave failed", "residenceID", residenceID, "error", err)
	}
}

func (srv *draftService) statusLocked(session *draftSession) *usecase.DraftStatus {
	return &usecase.DraftStatus{
		ResidenceID:     session.residenceID,
		State:           session.state,
		AutosaveEnabled: session.autosave,
		Draft:           session.draft.Clone(),
		LastSavedAt:     session.lastSavedAt,
		LastSaveError:   session.lastSaveError,
	}
}

// listField maps an editable list field name to its slice in the draft.
func listField(residence *entity.Residence, field string) *[]string {
	switch field {
	case "images":
		return &residence.Images
	case "video_urls":
		return &residence.VideoURLs
	case "services":
		return &residence.Services
	case "facilities":
		return &residence.Facilities
	case "activities":
		return &residence.Activities
	case "certifications":
		return &residence.Certifications
	case "stay_types":
		return &residence.StayTypes
	case "admissions":
		return &residence.Admissions
	default:
		return nil
	}
}
