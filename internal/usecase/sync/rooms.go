package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/clock"
)

// RoomReconciler mirrors the PMS room-type catalog into local rooms. Rooms
// are the one entity with destructive reconciliation: the remote catalog is
// authoritative for inventory existence, so synced rooms it no longer lists
// are deleted. deleteMissing makes that asymmetry an explicit policy rather
// than an implicit special case.
type RoomReconciler struct {
	pms           pms.Client
	rooms         RoomStore
	db            repository.DBTX
	clock         clock.Clock
	deleteMissing bool
	log           *slog.Logger
}

func NewRoomReconciler(pmsClient pms.Client, rooms RoomStore, db repository.DBTX, clk clock.Clock, log *slog.Logger) *RoomReconciler {
	return &RoomReconciler{
		pms:           pmsClient,
		rooms:         rooms,
		db:            db,
		clock:         clk,
		deleteMissing: true,
		log:           log,
	}
}

// Run performs one full (non-incremental) catalog pass. The catalog carries
// no modification timestamps, so every pass reads everything.
func (r *RoomReconciler) Run(ctx context.Context) (Result, error) {
	var result Result

	types, err := r.pms.ListRoomTypes(ctx)
	if err != nil {
		return result, err
	}

	rates := r.probeRates(ctx)

	seen := make([]string, 0, len(types))
	for _, rt := range types {
		if rt.ID == "" {
			result.Errors = append(result.Errors, "room type without an identifier skipped")
			continue
		}
		seen = append(seen, rt.ID)
		result.Processed++

		if err := r.reconcileOne(ctx, rt, rates, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("room %s: %v", rt.ID, err))
		}
	}

	if r.deleteMissing {
		r.deleteAbsent(ctx, seen, &result)
	}

	return result, nil
}

// probeRates fetches one lookahead night of availability to price the
// catalog; the catalog call itself does not carry current rates. A probe
// failure degrades to catalog rates rather than failing the pass.
func (r *RoomReconciler) probeRates(ctx context.Context) map[string]float64 {
	today := r.clock.Now().UTC().Truncate(24 * time.Hour)
	avail, err := r.pms.CheckAvailability(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		r.log.Warn("rate probe failed, falling back to catalog rates", "error", err)
		return nil
	}
	rates := make(map[string]float64, len(avail))
	for _, a := range avail {
		if a.Rate > 0 {
			rates[a.RoomTypeID] = a.Rate
		}
	}
	return rates
}

func (r *RoomReconciler) desiredRoom(rt pms.RoomType, rates map[string]float64) (*room.Room, error) {
	rate := rt.Rate
	if probed, ok := rates[rt.ID]; ok {
		rate = probed
	}
	price, err := reservation.MoneyFromFloat(rate)
	if err != nil {
		return nil, err
	}

	capacity := rt.MaxGuests
	if capacity < 1 {
		capacity = rt.AdultsIncluded
	}
	if capacity < 1 {
		capacity = 1
	}

	number := rt.NameShort
	if number == "" {
		number = rt.ID
	}

	externalID := rt.ID
	rm := &room.Room{
		Name:        rt.Name,
		RoomNumber:  number,
		Type:        room.CategoryFromName(rt.Name),
		Description: rt.Description,
		BedType:     room.BedTypeFromName(rt.Name),
		PriceCents:  price.Cents(),
		Capacity:    capacity,
		MaxChildren: rt.ChildrenIncluded,
		UnitCount:   rt.UnitsAvailable,
		Amenities:   rt.Features,
		Images:      rt.Photos,
		Status:      room.StatusAvailable,
		ExternalID:  &externalID,
	}
	if err := rm.Validate(); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *RoomReconciler) reconcileOne(ctx context.Context, rt pms.RoomType, rates map[string]float64, result *Result) error {
	desired, err := r.desiredRoom(rt, rates)
	if err != nil {
		return err
	}

	existing, err := r.rooms.FindByExternalID(ctx, rt.ID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		id, err := r.rooms.Create(ctx, r.db, desired)
		if err != nil {
			return err
		}
		result.Created++
		result.CreatedItems = append(result.CreatedItems, ChangedItem{ID: id.String(), Name: desired.Name})
		return nil
	}

	var d fieldDiff
	updated := existing.Room
	updated.Name = d.Str("name", existing.Name, desired.Name)
	updated.Description = d.Str("description", existing.Description, desired.Description)
	updated.BedType = d.Str("bed type", existing.BedType, desired.BedType)
	updated.Type = d.Str("category", existing.Type, desired.Type)
	updated.PriceCents = d.Cents("price", existing.PriceCents, desired.PriceCents)
	updated.Capacity = d.Int("capacity", existing.Capacity, desired.Capacity)
	updated.MaxChildren = d.Int("max children", existing.MaxChildren, desired.MaxChildren)
	updated.UnitCount = d.Int("units", existing.UnitCount, desired.UnitCount)
	updated.Amenities = d.Strs("amenities", existing.Amenities, desired.Amenities)
	// Locally curated images win: sync only fills an empty gallery.
	if len(existing.Images) == 0 && len(desired.Images) > 0 {
		updated.Images = d.Strs("images", existing.Images, desired.Images)
	}

	if !d.Changed() {
		result.Skipped++
		return nil
	}

	if err := r.rooms.Update(ctx, r.db, existing.ID, &updated); err != nil {
		return err
	}
	result.Updated++
	result.UpdatedItems = append(result.UpdatedItems, ChangedItem{
		ID:      existing.ID.String(),
		Name:    updated.Name,
		Changes: d.Changes(),
	})
	return nil
}

func (r *RoomReconciler) deleteAbsent(ctx context.Context, seen []string, result *Result) {
	stale, err := r.rooms.FindSyncedNotIn(ctx, seen)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("stale room lookup: %v", err))
		return
	}
	for _, rec := range stale {
		if err := r.rooms.Delete(ctx, r.db, rec.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("delete room %s: %v", rec.RoomNumber, err))
			continue
		}
		r.log.Info("deleted room absent from remote catalog",
			"room", rec.RoomNumber, "external_id", *rec.ExternalID)
	}
}
