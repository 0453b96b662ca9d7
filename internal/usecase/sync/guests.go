package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"
)

// GuestReconciler mirrors PMS guests into local clients. Guest
// reconciliation is non-destructive: local clients may be staff-entered with
// no remote counterpart, so absence from a pull never deletes.
type GuestReconciler struct {
	pms      pms.Client
	clients  ClientStore
	db       repository.DBTX
	tzOffset int
	log      *slog.Logger
}

func NewGuestReconciler(pmsClient pms.Client, clients ClientStore, db repository.DBTX, tzOffset int, log *slog.Logger) *GuestReconciler {
	return &GuestReconciler{
		pms:      pmsClient,
		clients:  clients,
		db:       db,
		tzOffset: tzOffset,
		log:      log,
	}
}

// Run performs one incremental pass against the given watermark instant.
func (g *GuestReconciler) Run(ctx context.Context, watermark time.Time) (Result, error) {
	var result Result

	records, err := g.pms.ListGuests(ctx, pms.ListParams{
		ModifiedSince: FormatInRemoteTZ(watermark, g.tzOffset),
	})
	if err != nil {
		return result, err
	}

	for _, rec := range records {
		if !g.withinWindow(rec, watermark) {
			continue
		}
		result.Processed++
		if err := g.reconcileOne(ctx, rec, &result); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("guest %s: %v", StringField(rec, "guestID", "guest_id", "id"), err))
		}
	}
	return result, nil
}

// withinWindow re-filters locally against each record's own modification
// timestamp. The remote's server-side filter is not trusted to be exact, and
// a record lacking a timestamp is conservatively kept.
func (g *GuestReconciler) withinWindow(rec pms.Record, watermark time.Time) bool {
	modified, ok := TimeField(rec, RemoteZone(g.tzOffset),
		"dateModified", "date_modified", "modifiedAt", "lastModified")
	if !ok {
		return true
	}
	return !modified.Before(watermark)
}

func (g *GuestReconciler) desiredClient(rec pms.Record) (*client.Client, error) {
	externalID := StringField(rec, "guestID", "guest_id", "id")
	c := &client.Client{
		FullName: FullName(rec),
		Email:    StringField(rec, "guestEmail", "email"),
		Phone:    StringField(rec, "guestPhone", "phone", "cellPhone"),
		Country:  StringField(rec, "guestCountry", "country"),
		City:     StringField(rec, "guestCity", "city"),
		Zip:      StringField(rec, "guestZip", "zip", "postalCode"),
		Address:  StringField(rec, "guestAddress", "address", "address1"),
	}
	if externalID != "" {
		c.ExternalID = &externalID
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (g *GuestReconciler) reconcileOne(ctx context.Context, rec pms.Record, result *Result) error {
	email := StringField(rec, "guestEmail", "email")
	if email == "" {
		// Email is the secondary natural key; without one the record cannot
		// be reconciled safely against staff-entered clients.
		result.Unresolvable++
		return nil
	}

	desired, err := g.desiredClient(rec)
	if err != nil {
		return err
	}

	existing, err := g.resolve(ctx, desired)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		id, err := g.clients.Create(ctx, g.db, desired)
		if err != nil {
			return err
		}
		result.Created++
		result.CreatedItems = append(result.CreatedItems, ChangedItem{ID: id.String(), Name: desired.FullName})
		return nil
	}

	var d fieldDiff
	updated := existing.Client
	updated.FullName = d.Str("name", existing.FullName, desired.FullName)
	updated.Email = d.Str("email", existing.Email, desired.Email)
	updated.Phone = d.Str("phone", existing.Phone, desired.Phone)
	updated.Country = d.Str("country", existing.Country, desired.Country)
	updated.City = d.Str("city", existing.City, desired.City)
	updated.Zip = d.Str("zip", existing.Zip, desired.Zip)
	updated.Address = d.Str("address", existing.Address, desired.Address)
	if existing.ExternalID == nil && desired.ExternalID != nil {
		updated.ExternalID = desired.ExternalID
		d.changes = append(d.changes, fmt.Sprintf("external id: (empty) → %s", *desired.ExternalID))
	}

	if !d.Changed() {
		result.Skipped++
		return nil
	}

	if err := g.clients.Update(ctx, g.db, existing.ID, &updated); err != nil {
		return err
	}
	result.Updated++
	result.UpdatedItems = append(result.UpdatedItems, ChangedItem{
		ID:      existing.ID.String(),
		Name:    updated.FullName,
		Changes: d.Changes(),
	})
	return nil
}

// resolve looks up the local match by external id first, then by email.
func (g *GuestReconciler) resolve(ctx context.Context, desired *client.Client) (*repository.ClientRecord, error) {
	if desired.ExternalID != nil {
		rec, err := g.clients.FindByExternalID(ctx, *desired.ExternalID)
		if err == nil {
			return rec, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}
	return g.clients.FindByEmail(ctx, desired.Email)
}
