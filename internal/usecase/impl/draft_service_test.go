package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	mockUC "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// draftServiceFixtures holds all test dependencies for draft service tests.
type draftServiceFixtures struct {
	service usecase.DraftUsecase
	admin   *mockUC.MockAdminUsecase
}

func createTestDraftService(t *testing.T, autosaveDelay time.Duration) draftServiceFixtures {
	admin := mockUC.NewMockAdminUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Admin: &config.AdminConfig{AutosaveDelay: autosaveDelay}}

	return draftServiceFixtures{
		service: NewDraftService(admin, cfg, logger),
		admin:   admin,
	}
}

// longDelay keeps the autosave timer from firing during synchronous tests.
const longDelay = time.Hour

func draftResidence() *entity.Residence {
	residence := &entity.Residence{
		ID:       uuid.New(),
		Name:     "Hogar Los Tilos",
		City:     "Montevideo",
		Province: "Montevideo",
	}
	residence.NormalizeLists()
	residence.Transparency = entity.TransparencyScore(residence)

	return residence
}

func openSession(t *testing.T, fx draftServiceFixtures, residence *entity.Residence) *usecase.DraftStatus {
	t.Helper()

	fx.admin.EXPECT().GetResidence(mock.Anything, residence.ID).
		Return(residence.Clone(), nil).Once()

	status, err := fx.service.Open(context.Background(), residence.ID)
	require.NoError(t, err)

	return status
}

func TestDraftService_Open_StartsClean(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	status := openSession(t, fx, residence)

	assert.Equal(t, usecase.DraftClean, status.State)
	assert.True(t, status.AutosaveEnabled)
	assert.Equal(t, residence.ID, status.Draft.ID)
}

func TestDraftService_Open_IsIdempotent(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err := fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	// a second Open must not reload and wipe the pending edits
	status, err := fx.service.Open(context.Background(), residence.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftDirty, status.State)
	assert.Equal(t, "texto nuevo", status.Draft.Description)
}

func TestDraftService_Status_RequiresOpenSession(t *testing.T) {
	fx := createTestDraftService(t, longDelay)

	status, err := fx.service.Status(uuid.New())

	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotOpen)
}

func TestDraftService_Update_MarksDirtyOnlyOnRealChange(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	// resubmitting the unchanged document keeps the session clean
	status, err := fx.service.Update(residence.ID, residence.Clone())
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftClean, status.State)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	status, err = fx.service.Update(residence.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftDirty, status.State)
}

func TestDraftService_Update_RevertReturnsToClean(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err := fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	// undoing the edit by hand lands back on clean, not dirty
	status, err := fx.service.Update(residence.ID, residence.Clone())
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftClean, status.State)
}

func TestDraftService_EditList(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	status, err := fx.service.EditList(residence.ID, "services", usecase.ListOp{
		Action: "add",
		Value:  "enfermería 24h",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftDirty, status.State)
	assert.Equal(t, []string{"enfermería 24h"}, status.Draft.Services)

	status, err = fx.service.EditList(residence.ID, "services", usecase.ListOp{
		Action: "update",
		Index:  0,
		Value:  "enfermería",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"enfermería"}, status.Draft.Services)

	status, err = fx.service.EditList(residence.ID, "services", usecase.ListOp{
		Action: "remove",
		Index:  0,
	})
	require.NoError(t, err)
	assert.Empty(t, status.Draft.Services)
	assert.Equal(t, usecase.DraftClean, status.State, "removing the added entry reverts the draft")
}

func TestDraftService_EditList_UnknownField(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	status, err := fx.service.EditList(residence.ID, "precios", usecase.ListOp{Action: "add", Value: "x"})

	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDraftService_Save_CleanIsNoOp(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	// no SaveResidence expectation: the pipeline must not run
	result, err := fx.service.Save(context.Background(), residence.ID)

	require.NoError(t, err)
	assert.Equal(t, residence.ID, result.Residence.ID)
}

func TestDraftService_Save_PersistsAndReturnsToClean(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err := fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	fx.admin.EXPECT().
		SaveResidence(mock.Anything, mock.AnythingOfType("*entity.Residence"), (*usecase.SideChannel)(nil)).
		RunAndReturn(func(_ context.Context, draft *entity.Residence, _ *usecase.SideChannel) (*usecase.SaveResult, error) {
			assert.Equal(t, "texto nuevo", draft.Description)

			return &usecase.SaveResult{Residence: draft}, nil
		}).Once()

	result, err := fx.service.Save(context.Background(), residence.ID)
	require.NoError(t, err)
	assert.Equal(t, "texto nuevo", result.Residence.Description)

	status, err := fx.service.Status(residence.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftClean, status.State)
	assert.NotNil(t, status.LastSavedAt)
	assert.Empty(t, status.LastSaveError)
}

func TestDraftService_Save_FailureLeavesDirty(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err := fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	fx.admin.EXPECT().
		SaveResidence(mock.Anything, mock.AnythingOfType("*entity.Residence"), (*usecase.SideChannel)(nil)).
		Return(nil, domainerrors.ErrResidenceUpdateFailed).Once()

	_, err = fx.service.Save(context.Background(), residence.ID)
	require.Error(t, err)

	status, err := fx.service.Status(residence.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftDirty, status.State, "edits survive a failed save")
	assert.NotEmpty(t, status.LastSaveError)
}

func TestDraftService_Save_AbsorbsPipelineChanges(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	_, err := fx.service.SetSideChannel(residence.ID, "phones", []string{"099123456", "099 123 456"})
	require.NoError(t, err)

	fx.admin.EXPECT().
		SaveResidence(mock.Anything, mock.AnythingOfType("*entity.Residence"), mock.AnythingOfType("*usecase.SideChannel")).
		RunAndReturn(func(_ context.Context, draft *entity.Residence, side *usecase.SideChannel) (*usecase.SaveResult, error) {
			require.NotNil(t, side.Phones)

			saved := draft.Clone()
			saved.AdditionalPhones = []string{"099123456"}

			return &usecase.SaveResult{
				Residence:         saved,
				RemovedDuplicates: []string{"099 123 456"},
			}, nil
		}).Once()

	result, err := fx.service.Save(context.Background(), residence.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"099 123 456"}, result.RemovedDuplicates)

	// the deduplicated list becomes the new baseline; saving again is a no-op
	status, err := fx.service.Status(residence.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftClean, status.State)
	assert.Equal(t, []string{"099123456"}, status.Draft.AdditionalPhones)

	_, err = fx.service.Save(context.Background(), residence.ID)
	require.NoError(t, err)
}

func TestDraftService_Autosave_FiresAfterQuietPeriod(t *testing.T) {
	fx := createTestDraftService(t, 20*time.Millisecond)
	residence := draftResidence()

	openSession(t, fx, residence)

	saved := make(chan struct{})

	fx.admin.EXPECT().
		SaveResidence(mock.Anything, mock.AnythingOfType("*entity.Residence"), (*usecase.SideChannel)(nil)).
		RunAndReturn(func(_ context.Context, draft *entity.Residence, _ *usecase.SideChannel) (*usecase.SaveResult, error) {
			close(saved)

			return &usecase.SaveResult{Residence: draft}, nil
		}).Once()

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err := fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave never fired")
	}

	assert.Eventually(t, func() bool {
		status, err := fx.service.Status(residence.ID)

		return err == nil && status.State == usecase.DraftClean
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDraftService_Autosave_DisabledDoesNotFire(t *testing.T) {
	fx := createTestDraftService(t, 20*time.Millisecond)
	residence := draftResidence()

	openSession(t, fx, residence)

	_, err := fx.service.SetAutosave(residence.ID, false)
	require.NoError(t, err)

	edited := residence.Clone()
	edited.Description = "texto nuevo"
	_, err = fx.service.Update(residence.ID, edited)
	require.NoError(t, err)

	// no SaveResidence expectation: firing would fail the mock
	time.Sleep(100 * time.Millisecond)

	status, err := fx.service.Status(residence.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.DraftDirty, status.State)
}

func TestDraftService_Close_DiscardsSession(t *testing.T) {
	fx := createTestDraftService(t, longDelay)
	residence := draftResidence()

	openSession(t, fx, residence)

	require.NoError(t, fx.service.Close(residence.ID))

	_, err := fx.service.Status(residence.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotOpen)

	// closing twice is harmless
	require.NoError(t, fx.service.Close(residence.ID))
}
