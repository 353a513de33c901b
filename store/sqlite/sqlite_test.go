package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetAgreement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fetchedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	err := store.SaveAgreement(ctx, sqlite.Record{
		AgreementID: "SFI123456789",
		Status:      agreement.StatusOffered,
		Payload:     []byte(`{"status":"offered"}`),
		FetchedAt:   fetchedAt,
	})
	require.NoError(t, err)

	got, err := store.GetAgreement(ctx, "SFI123456789")
	require.NoError(t, err)
	assert.Equal(t, "SFI123456789", got.AgreementID)
	assert.Equal(t, agreement.StatusOffered, got.Status)
	assert.JSONEq(t, `{"status":"offered"}`, string(got.Payload))
	assert.True(t, got.FetchedAt.Equal(fetchedAt))
}

func TestSaveAgreement_DefaultsFetchedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	err := store.SaveAgreement(ctx, sqlite.Record{
		AgreementID: "SFI123456789",
		Status:      agreement.StatusOffered,
		Payload:     []byte(`{}`),
	})
	require.NoError(t, err)

	got, err := store.GetAgreement(ctx, "SFI123456789")
	require.NoError(t, err)
	assert.False(t, got.FetchedAt.Before(before))
}

func TestSaveAgreement_ReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAgreement(ctx, sqlite.Record{
		AgreementID: "SFI123456789",
		Status:      agreement.StatusOffered,
		Payload:     []byte(`{"status":"offered"}`),
	}))
	require.NoError(t, store.SaveAgreement(ctx, sqlite.Record{
		AgreementID: "SFI123456789",
		Status:      agreement.StatusAccepted,
		Payload:     []byte(`{"status":"accepted"}`),
	}))

	got, err := store.GetAgreement(ctx, "SFI123456789")
	require.NoError(t, err)
	assert.Equal(t, agreement.StatusAccepted, got.Status)

	records, err := store.ListAgreements(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetAgreement_NotCached(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetAgreement(context.Background(), "SFI000000000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, agreement.ErrAgreementNotCached))
	assert.True(t, agreement.IsNotFound(err))
}

func TestListAgreements_OrderedByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"SFI987654321", "SFI123456789", "SFI000000013"} {
		require.NoError(t, store.SaveAgreement(ctx, sqlite.Record{
			AgreementID: id,
			Status:      agreement.StatusOffered,
			Payload:     []byte(`{}`),
		}))
	}

	records, err := store.ListAgreements(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "SFI000000013", records[0].AgreementID)
	assert.Equal(t, "SFI123456789", records[1].AgreementID)
	assert.Equal(t, "SFI987654321", records[2].AgreementID)
}

func TestDeleteAgreement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAgreement(ctx, sqlite.Record{
		AgreementID: "SFI123456789",
		Status:      agreement.StatusOffered,
		Payload:     []byte(`{}`),
	}))

	require.NoError(t, store.DeleteAgreement(ctx, "SFI123456789"))

	_, err := store.GetAgreement(ctx, "SFI123456789")
	assert.True(t, errors.Is(err, agreement.ErrAgreementNotCached))

	// Deleting an id that is not cached is a no-op.
	assert.NoError(t, store.DeleteAgreement(ctx, "SFI123456789"))
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"SFI123456789", "SFI987654321"} {
		require.NoError(t, store.SaveAgreement(ctx, sqlite.Record{
			AgreementID: id,
			Status:      agreement.StatusOffered,
			Payload:     []byte(`{}`),
		}))
	}

	require.NoError(t, store.Reset(ctx))

	records, err := store.ListAgreements(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
