package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

// ReservationReconciler mirrors PMS reservations into local bookings. It
// runs after the room and guest passes because each imported booking must
// resolve a local room and client.
type ReservationReconciler struct {
	pms          pms.Client
	reservations ReservationStore
	rooms        RoomStore
	clients      ClientStore
	db           repository.DBTX
	tzOffset     int
	log          *slog.Logger
}

func NewReservationReconciler(
	pmsClient pms.Client,
	reservations ReservationStore,
	rooms RoomStore,
	clients ClientStore,
	db repository.DBTX,
	tzOffset int,
	log *slog.Logger,
) *ReservationReconciler {
	return &ReservationReconciler{
		pms:          pmsClient,
		reservations: reservations,
		rooms:        rooms,
		clients:      clients,
		db:           db,
		tzOffset:     tzOffset,
		log:          log,
	}
}

func (r *ReservationReconciler) Run(ctx context.Context, watermark time.Time) (Result, error) {
	var result Result

	records, err := r.pms.ListReservations(ctx, pms.ListParams{
		ModifiedSince: FormatInRemoteTZ(watermark, r.tzOffset),
	})
	if err != nil {
		return result, err
	}

	for _, rec := range records {
		if !r.withinWindow(rec, watermark) {
			continue
		}
		result.Processed++
		if err := r.reconcileOne(ctx, rec, &result); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("reservation %s: %v", StringField(rec, "reservationID", "reservation_id", "id"), err))
		}
	}
	return result, nil
}

func (r *ReservationReconciler) withinWindow(rec pms.Record, watermark time.Time) bool {
	modified, ok := TimeField(rec, RemoteZone(r.tzOffset),
		"dateModified", "date_modified", "modifiedAt", "lastModified")
	if !ok {
		return true
	}
	return !modified.Before(watermark)
}

func (r *ReservationReconciler) reconcileOne(ctx context.Context, rec pms.Record, result *Result) error {
	externalID := StringField(rec, "reservationID", "reservation_id", "id")
	if externalID == "" {
		result.Unresolvable++
		return nil
	}

	zone := RemoteZone(r.tzOffset)
	checkIn, okIn := TimeField(rec, zone, "startDate", "checkIn", "check_in", "checkin")
	checkOut, okOut := TimeField(rec, zone, "endDate", "checkOut", "check_out", "checkout")
	if !okIn || !okOut {
		return fmt.Errorf("missing stay dates")
	}
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return err
	}

	status := reservation.MapRemoteStatus(StringField(rec, "status", "reservationStatus"))
	adults, _ := IntField(rec, "adults", "adultCount")
	children, _ := IntField(rec, "children", "childCount", "kids")
	requests := StringField(rec, "specialRequests", "special_requests", "notes")

	existing, err := r.reservations.FindByExternalID(ctx, externalID)
	if err == nil {
		return r.applyExisting(ctx, existing, stay, adults, children, requests, rec, status, result)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}

	clientID, err := r.resolveClient(ctx, rec, externalID)
	if err != nil {
		return err
	}
	roomRec, err := r.resolveRoom(ctx, rec, externalID)
	if err != nil {
		return err
	}

	total, err := r.totalPrice(rec, stay, roomRec.PriceCents)
	if err != nil {
		return err
	}

	externalCreated, hasCreated := TimeField(rec, zone, "dateCreated", "date_created", "createdAt")
	var externalCreatedAt *time.Time
	if hasCreated {
		externalCreatedAt = &externalCreated
	}

	res, err := reservation.NewImportedReservation(
		roomRec.ID, clientID, stay, adults, children, requests,
		total, status, externalID, externalCreatedAt,
	)
	if err != nil {
		return err
	}
	if err := r.reservations.Create(ctx, r.db, res); err != nil {
		return err
	}
	result.Created++
	result.CreatedItems = append(result.CreatedItems, ChangedItem{
		ID:   res.ID().String(),
		Name: fmt.Sprintf("%s %s", roomRec.Name, stay.String()),
	})
	return nil
}

func (r *ReservationReconciler) applyExisting(
	ctx context.Context,
	existing *reservation.Reservation,
	stay reservation.StayRange,
	adults, children int,
	requests string,
	rec pms.Record,
	status reservation.Status,
	result *Result,
) error {
	total, err := r.totalPrice(rec, stay, 0)
	if err != nil {
		return err
	}
	if total.IsZero() {
		// No usable total on the remote record. The stored total still fits
		// as long as the stay length is unchanged; otherwise reprice from
		// the room's nightly rate.
		if stay.Nights() == existing.Stay().Nights() {
			total = existing.TotalPrice()
		} else {
			roomRec, err := r.rooms.FindByID(ctx, existing.RoomID())
			if err != nil {
				return err
			}
			nightly, err := reservation.NewMoney(roomRec.PriceCents)
			if err != nil {
				return err
			}
			total = nightly.MultiplyNights(stay.Nights())
		}
	}

	var d fieldDiff
	d.Str("check-in", existing.Stay().CheckIn().Format("2006-01-02"), stay.CheckIn().Format("2006-01-02"))
	d.Str("check-out", existing.Stay().CheckOut().Format("2006-01-02"), stay.CheckOut().Format("2006-01-02"))
	d.Str("status", string(existing.Status()), string(status))
	d.Int("adults", existing.Adults(), adults)
	d.Int("children", existing.Children(), children)
	d.Str("special requests", existing.SpecialRequests(), requests)
	d.Cents("total", existing.TotalPrice().Cents(), total.Cents())

	if !d.Changed() {
		result.Skipped++
		return nil
	}

	newAdults := existing.Adults()
	if adults >= 1 {
		newAdults = adults
	}
	newChildren := existing.Children()
	if children > 0 {
		newChildren = children
	}
	newRequests := existing.SpecialRequests()
	if requests != "" {
		newRequests = requests
	}
	existing.ApplyRemoteState(stay, newAdults, newChildren, newRequests, total, status)

	if err := r.reservations.Update(ctx, r.db, existing); err != nil {
		return err
	}
	result.Updated++
	result.UpdatedItems = append(result.UpdatedItems, ChangedItem{
		ID:      existing.ID().String(),
		Name:    stay.String(),
		Changes: d.Changes(),
	})
	return nil
}

// resolveClient finds the booking's guest or creates one on the fly. An
// email-less guest still gets a stable synthesized address keyed by the
// remote id so repeat imports deduplicate.
func (r *ReservationReconciler) resolveClient(ctx context.Context, rec pms.Record, reservationExternalID string) (uuid.UUID, error) {
	guestExternalID := StringField(rec, "guestID", "guest_id")
	if guestExternalID != "" {
		if found, err := r.clients.FindByExternalID(ctx, guestExternalID); err == nil {
			return found.ID, nil
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, err
		}
	}

	email := StringField(rec, "guestEmail", "email")
	if email == "" {
		key := guestExternalID
		if key == "" {
			key = reservationExternalID
		}
		email = fmt.Sprintf("guest-%s@imported.invalid", key)
		r.log.Warn("guest without email, synthesizing address",
			"reservation", reservationExternalID, "email", email)
	}
	if found, err := r.clients.FindByEmail(ctx, email); err == nil {
		return found.ID, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	name := FullName(rec)
	if name == "" {
		name = "Imported Guest"
	}
	c := &client.Client{
		FullName: name,
		Email:    email,
		Phone:    StringField(rec, "guestPhone", "phone"),
		Country:  StringField(rec, "guestCountry", "country"),
	}
	if guestExternalID != "" {
		c.ExternalID = &guestExternalID
	}
	if err := c.Validate(); err != nil {
		return uuid.Nil, err
	}
	return r.clients.Create(ctx, r.db, c)
}

// resolveRoom matches the booking's room type, falling back to the
// oldest-created room rather than dropping the booking when the type is
// unknown locally.
func (r *ReservationReconciler) resolveRoom(ctx context.Context, rec pms.Record, reservationExternalID string) (*repository.RoomRecord, error) {
	roomTypeID := StringField(rec, "roomTypeID", "room_type_id", "roomID")
	if roomTypeID != "" {
		if found, err := r.rooms.FindByExternalID(ctx, roomTypeID); err == nil {
			return found, nil
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}

	fallback, err := r.rooms.FindOldest(ctx)
	if err != nil {
		return nil, fmt.Errorf("no local room to assign: %w", err)
	}
	r.log.Warn("room type not matched, assigning fallback room",
		"reservation", reservationExternalID,
		"room_type", roomTypeID,
		"fallback_room", fallback.RoomNumber)
	return fallback, nil
}

// totalPrice prefers the authoritative remote total; absent or zero, it is
// nights times the local nightly rate.
func (r *ReservationReconciler) totalPrice(rec pms.Record, stay reservation.StayRange, nightlyCents int64) (reservation.Money, error) {
	if remote, ok := FloatField(rec, "total", "grandTotal", "totalAmount", "balance"); ok && remote > 0 {
		return reservation.MoneyFromFloat(remote)
	}
	nightly, err := reservation.NewMoney(nightlyCents)
	if err != nil {
		return reservation.Money{}, err
	}
	return nightly.MultiplyNights(stay.Nights()), nil
}
