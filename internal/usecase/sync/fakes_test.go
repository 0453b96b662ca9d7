//go:build unit

package sync

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

// fakePMS serves canned data in place of the remote.
type fakePMS struct {
	roomTypes    []pms.RoomType
	availability []pms.Availability
	guests       []pms.Record
	reservations []pms.Record

	roomTypesErr    error
	availabilityErr error
	guestsErr       error
	reservationsErr error

	guestsModifiedSince string
	availabilityWindow  [2]time.Time
}

func (f *fakePMS) ListRoomTypes(context.Context) ([]pms.RoomType, error) {
	return f.roomTypes, f.roomTypesErr
}

func (f *fakePMS) CheckAvailability(_ context.Context, checkIn, checkOut time.Time) ([]pms.Availability, error) {
	f.availabilityWindow = [2]time.Time{checkIn, checkOut}
	return f.availability, f.availabilityErr
}

func (f *fakePMS) ListGuests(_ context.Context, params pms.ListParams) ([]pms.Record, error) {
	f.guestsModifiedSince = params.ModifiedSince
	return f.guests, f.guestsErr
}

func (f *fakePMS) ListReservations(context.Context, pms.ListParams) ([]pms.Record, error) {
	return f.reservations, f.reservationsErr
}

func (f *fakePMS) CreateReservation(context.Context, pms.CreateReservationParams) (*pms.CreateReservationResult, error) {
	return &pms.CreateReservationResult{ReservationID: "remote-1"}, nil
}

func (f *fakePMS) InvalidateInventoryCache(context.Context) error { return nil }

type fakeRoomStore struct {
	records []*repository.RoomRecord
	created []*room.Room
	updated map[uuid.UUID]*room.Room
	deleted []uuid.UUID
}

func newFakeRoomStore(records ...*repository.RoomRecord) *fakeRoomStore {
	return &fakeRoomStore{records: records, updated: make(map[uuid.UUID]*room.Room)}
}

func (f *fakeRoomStore) FindAll(context.Context) ([]*repository.RoomRecord, error) {
	return f.records, nil
}

func (f *fakeRoomStore) FindByID(_ context.Context, id uuid.UUID) (*repository.RoomRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, notFound()
}

func (f *fakeRoomStore) FindByExternalID(_ context.Context, externalID string) (*repository.RoomRecord, error) {
	for _, rec := range f.records {
		if rec.ExternalID != nil && *rec.ExternalID == externalID {
			return rec, nil
		}
	}
	return nil, notFound()
}

func (f *fakeRoomStore) FindOldest(context.Context) (*repository.RoomRecord, error) {
	if len(f.records) == 0 {
		return nil, notFound()
	}
	return f.records[0], nil
}

func (f *fakeRoomStore) FindSyncedNotIn(_ context.Context, keep []string) ([]*repository.RoomRecord, error) {
	kept := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}
	var stale []*repository.RoomRecord
	for _, rec := range f.records {
		if rec.ExternalID == nil {
			continue
		}
		if _, ok := kept[*rec.ExternalID]; !ok {
			stale = append(stale, rec)
		}
	}
	return stale, nil
}

func (f *fakeRoomStore) Create(_ context.Context, _ repository.DBTX, rm *room.Room) (uuid.UUID, error) {
	f.created = append(f.created, rm)
	id := uuid.New()
	f.records = append(f.records, &repository.RoomRecord{ID: id, Room: *rm})
	return id, nil
}

func (f *fakeRoomStore) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, rm *room.Room) error {
	f.updated[id] = rm
	return nil
}

func (f *fakeRoomStore) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeClientStore struct {
	records []*repository.ClientRecord
	created []*client.Client
	updated map[uuid.UUID]*client.Client
}

func newFakeClientStore(records ...*repository.ClientRecord) *fakeClientStore {
	return &fakeClientStore{records: records, updated: make(map[uuid.UUID]*client.Client)}
}

func (f *fakeClientStore) FindByExternalID(_ context.Context, externalID string) (*repository.ClientRecord, error) {
	for _, rec := range f.records {
		if rec.ExternalID != nil && *rec.ExternalID == externalID {
			return rec, nil
		}
	}
	return nil, notFound()
}

func (f *fakeClientStore) FindByEmail(_ context.Context, email string) (*repository.ClientRecord, error) {
	for _, rec := range f.records {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, notFound()
}

func (f *fakeClientStore) Create(_ context.Context, _ repository.DBTX, c *client.Client) (uuid.UUID, error) {
	f.created = append(f.created, c)
	id := uuid.New()
	f.records = append(f.records, &repository.ClientRecord{ID: id, Client: *c})
	return id, nil
}

func (f *fakeClientStore) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, c *client.Client) error {
	f.updated[id] = c
	return nil
}

type fakeReservationStore struct {
	byExternal map[string]*reservation.Reservation
	created    []*reservation.Reservation
	updated    []*reservation.Reservation
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{byExternal: make(map[string]*reservation.Reservation)}
}

func (f *fakeReservationStore) FindByExternalID(_ context.Context, externalID string) (*reservation.Reservation, error) {
	if res, ok := f.byExternal[externalID]; ok {
		return res, nil
	}
	return nil, notFound()
}

func (f *fakeReservationStore) Create(_ context.Context, _ repository.DBTX, res *reservation.Reservation) error {
	f.created = append(f.created, res)
	if res.ExternalID() != nil {
		f.byExternal[*res.ExternalID()] = res
	}
	return nil
}

func (f *fakeReservationStore) Update(_ context.Context, _ repository.DBTX, res *reservation.Reservation) error {
	f.updated = append(f.updated, res)
	return nil
}

type fakeSyncLogStore struct {
	lastSuccess *synclog.SyncLog
	createdLogs []*synclog.SyncLog
	completed   []*synclog.SyncLog
}

func (f *fakeSyncLogStore) Create(_ context.Context, l *synclog.SyncLog) error {
	f.createdLogs = append(f.createdLogs, l)
	return nil
}

func (f *fakeSyncLogStore) Complete(_ context.Context, l *synclog.SyncLog) error {
	f.completed = append(f.completed, l)
	return nil
}

func (f *fakeSyncLogStore) LastSuccessful(context.Context, synclog.Type) (*synclog.SyncLog, error) {
	if f.lastSuccess == nil {
		return nil, notFound()
	}
	return f.lastSuccess, nil
}

type fakeNotifier struct {
	sent []*notification.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, n *notification.Notification) {
	f.sent = append(f.sent, n)
}

func (f *fakeNotifier) byType(t notification.Type) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range f.sent {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

type fakeEvents struct {
	started   []time.Time
	completed []*Report
	failed    []string
}

func (f *fakeEvents) SyncStarted(at time.Time)     { f.started = append(f.started, at) }
func (f *fakeEvents) SyncCompleted(report *Report) { f.completed = append(f.completed, report) }
func (f *fakeEvents) SyncFailed(msg string)        { f.failed = append(f.failed, msg) }
