//go:build unit

package sync

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resWatermark = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func syncedRoom(externalID string) *repository.RoomRecord {
	return &repository.RoomRecord{ID: uuid.New(), Room: room.Room{
		Name:       "Deluxe King Suite",
		RoomNumber: "101",
		PriceCents: 15000,
		Capacity:   3,
		ExternalID: &externalID,
	}}
}

func syncedClient(externalID, email string) *repository.ClientRecord {
	return &repository.ClientRecord{ID: uuid.New(), Client: client.Client{
		FullName:   "Ana Perez",
		Email:      email,
		ExternalID: &externalID,
	}}
}

func reservationRecord() pms.Record {
	return pms.Record{
		"reservationID": "res-501",
		"roomTypeID":    "rt-1",
		"guestID":       "g-77",
		"guestEmail":    "ana.perez@example.com",
		"startDate":     "2026-04-01",
		"endDate":       "2026-04-04",
		"adults":        float64(2),
		"children":      float64(1),
		"status":        "confirmed",
		"total":         float64(450.00),
		"dateCreated":   "2026-03-09 18:30:00",
		"dateModified":  "2026-03-11 09:00:00",
	}
}

func newReservationReconcilerForTest(
	remote *fakePMS,
	resStore *fakeReservationStore,
	rooms *fakeRoomStore,
	clients *fakeClientStore,
) *ReservationReconciler {
	return NewReservationReconciler(remote, resStore, rooms, clients, nil, caracasOffset, discardLogger())
}

func TestReservationReconcilerImportsBooking(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	clientRec := syncedClient("g-77", "ana.perez@example.com")

	remote := &fakePMS{reservations: []pms.Record{reservationRecord()}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), newFakeClientStore(clientRec))

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	require.Len(t, resStore.created, 1)

	res := resStore.created[0]
	assert.Equal(t, roomRec.ID, res.RoomID())
	assert.Equal(t, clientRec.ID, res.ClientID())
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
	assert.Equal(t, 2, res.Adults())
	assert.Equal(t, 1, res.Children())
	assert.Equal(t, int64(45000), res.TotalPrice().Cents())
	require.NotNil(t, res.ExternalID())
	assert.Equal(t, "res-501", *res.ExternalID())
	require.NotNil(t, res.ExternalCreatedAt())
	assert.Equal(t, 3, res.Stay().Nights())
}

func TestReservationReconcilerIsIdempotent(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	clientRec := syncedClient("g-77", "ana.perez@example.com")
	remote := &fakePMS{reservations: []pms.Record{reservationRecord()}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), newFakeClientStore(clientRec))

	first, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)

	second, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 1, second.Skipped)
	assert.Empty(t, resStore.updated)
}

func TestReservationReconcilerAppliesRemoteChanges(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	clientRec := syncedClient("g-77", "ana.perez@example.com")
	remote := &fakePMS{reservations: []pms.Record{reservationRecord()}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), newFakeClientStore(clientRec))

	_, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	changed := reservationRecord()
	changed["status"] = "checked_in"
	changed["endDate"] = "2026-04-05"
	changed["total"] = float64(600.00)
	remote.reservations = []pms.Record{changed}

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	require.Equal(t, 1, result.Updated)
	require.Len(t, resStore.updated, 1)

	res := resStore.updated[0]
	assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	assert.Equal(t, int64(60000), res.TotalPrice().Cents())
	assert.Equal(t, 4, res.Stay().Nights())

	changes := result.UpdatedItems[0].Changes
	assert.Contains(t, changes, "status: confirmed → checked_in")
	assert.Contains(t, changes, "check-out: 2026-04-04 → 2026-04-05")
	assert.Contains(t, changes, "total: 450.00 → 600.00")
}

func TestReservationReconcilerZeroRemoteTotalKeepsExisting(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	clientRec := syncedClient("g-77", "ana.perez@example.com")
	remote := &fakePMS{reservations: []pms.Record{reservationRecord()}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), newFakeClientStore(clientRec))

	_, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	changed := reservationRecord()
	changed["status"] = "checked_in"
	delete(changed, "total")
	remote.reservations = []pms.Record{changed}

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	require.Equal(t, 1, result.Updated)
	assert.Equal(t, int64(45000), resStore.updated[0].TotalPrice().Cents())
}

func TestReservationReconcilerZeroRemoteTotalRepricesChangedStay(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	clientRec := syncedClient("g-77", "ana.perez@example.com")
	remote := &fakePMS{reservations: []pms.Record{reservationRecord()}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), newFakeClientStore(clientRec))

	_, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	// Stay grows from three to five nights and the remote drops the total;
	// the stored three-night total no longer fits the new dates.
	extended := reservationRecord()
	extended["endDate"] = "2026-04-06"
	delete(extended, "total")
	remote.reservations = []pms.Record{extended}

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	require.Equal(t, 1, result.Updated)
	assert.Equal(t, int64(5*15000), resStore.updated[0].TotalPrice().Cents())
}

func TestReservationReconcilerCreatesGuestOnTheFly(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	remote := &fakePMS{reservations: []pms.Record{{
		"reservationID":  "res-502",
		"roomTypeID":     "rt-1",
		"guestFirstName": "Luis",
		"guestLastName":  "Rojas",
		"guestEmail":     "luis.rojas@example.com",
		"startDate":      "2026-04-10",
		"endDate":        "2026-04-12",
		"adults":         float64(1),
		"status":         "not_confirmed",
	}}}
	resStore := newFakeReservationStore()
	clients := newFakeClientStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), clients)

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	require.Len(t, clients.created, 1)
	assert.Equal(t, "Luis Rojas", clients.created[0].FullName)

	// Without a remote total the price falls back to nights times the
	// room's nightly rate.
	require.Len(t, resStore.created, 1)
	assert.Equal(t, int64(30000), resStore.created[0].TotalPrice().Cents())
	assert.Equal(t, reservation.StatusPending, resStore.created[0].Status())
}

func TestReservationReconcilerSynthesizesGuestEmail(t *testing.T) {
	roomRec := syncedRoom("rt-1")
	record := pms.Record{
		"reservationID": "res-503",
		"roomTypeID":    "rt-1",
		"guestID":       "g-99",
		"startDate":     "2026-04-10",
		"endDate":       "2026-04-11",
		"status":        "confirmed",
	}
	remote := &fakePMS{reservations: []pms.Record{record}}
	resStore := newFakeReservationStore()
	clients := newFakeClientStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(roomRec), clients)

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)

	require.Len(t, clients.created, 1)
	assert.Equal(t, "guest-g-99@imported.invalid", clients.created[0].Email)
	assert.Equal(t, "Imported Guest", clients.created[0].FullName)

	// A second import of the same guest resolves the synthesized address
	// instead of creating a duplicate.
	record2 := pms.Record{
		"reservationID": "res-504",
		"roomTypeID":    "rt-1",
		"guestID":       "g-99",
		"startDate":     "2026-05-01",
		"endDate":       "2026-05-02",
		"status":        "confirmed",
	}
	remote.reservations = []pms.Record{record2}
	_, err = rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)
	assert.Len(t, clients.created, 1)
}

func TestReservationReconcilerFallbackRoom(t *testing.T) {
	fallback := syncedRoom("rt-other")
	record := reservationRecord()
	record["roomTypeID"] = "rt-unknown"

	remote := &fakePMS{reservations: []pms.Record{record}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(fallback),
		newFakeClientStore(syncedClient("g-77", "ana.perez@example.com")))

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	require.Equal(t, 1, result.Created)
	assert.Equal(t, fallback.ID, resStore.created[0].RoomID())
}

func TestReservationReconcilerNoRoomAtAll(t *testing.T) {
	record := reservationRecord()
	remote := &fakePMS{reservations: []pms.Record{record}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(),
		newFakeClientStore(syncedClient("g-77", "ana.perez@example.com")))

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "res-501")
}

func TestReservationReconcilerMissingDates(t *testing.T) {
	record := reservationRecord()
	delete(record, "startDate")

	remote := &fakePMS{reservations: []pms.Record{record}}
	resStore := newFakeReservationStore()
	rec := newReservationReconcilerForTest(remote, resStore, newFakeRoomStore(syncedRoom("rt-1")),
		newFakeClientStore(syncedClient("g-77", "ana.perez@example.com")))

	result, err := rec.Run(context.Background(), resWatermark)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "missing stay dates")
}
