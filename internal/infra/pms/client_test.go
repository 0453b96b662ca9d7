//go:build unit

package pms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-backoffice/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *MemoryCache) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cache := NewMemoryCache()
	client := NewHTTPClient(config.PMSConfig{
		APIURL:            srv.URL,
		APIKey:            "test-key",
		PropertyID:        "prop-1",
		RequestTimeout:    2 * time.Second,
		CatalogCacheTTL:   time.Minute,
		InventoryCacheTTL: time.Minute,
		PageSize:          2,
		MaxPages:          3,
	}, cache)
	return client, cache
}

func writeListResponse(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestListRoomTypesCachesCatalog(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/getRoomTypes", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "prop-1", r.URL.Query().Get("propertyID"))
		writeListResponse(w, []RoomType{{ID: "rt-1", Name: "Deluxe King"}})
	})

	first, err := client.ListRoomTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "rt-1", first[0].ID)

	second, err := client.ListRoomTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read must be served from cache")
}

func TestListGuestsPaginatesUntilShortPage(t *testing.T) {
	var pages []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getGuestList", r.URL.Path)
		assert.Equal(t, "2026-03-10 19:45:00", r.URL.Query().Get("modifiedFrom"))
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))

		page := r.URL.Query().Get("pageNumber")
		pages = append(pages, page)
		if page == "1" {
			writeListResponse(w, []Record{{"guestID": "g-1"}, {"guestID": "g-2"}})
			return
		}
		writeListResponse(w, []Record{{"guestID": "g-3"}})
	})

	records, err := client.ListGuests(context.Background(), ListParams{ModifiedSince: "2026-03-10 19:45:00"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestListReservationsStopsAtPageCap(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeListResponse(w, []Record{{"reservationID": "a"}, {"reservationID": "b"}})
	})

	records, err := client.ListReservations(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, 3, calls)
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindPermission},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindRemote},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		})

		_, err := client.ListGuests(context.Background(), ListParams{})
		require.Error(t, err)
		assert.True(t, IsErrorKind(err, tc.kind), "status %d should map to %s", tc.status, tc.kind)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.status, apiErr.StatusCode)
	}
}

func TestCreateReservationSendsFormAndInvalidatesInventory(t *testing.T) {
	client, cache := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/postReservation", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "prop-1", r.FormValue("propertyID"))
		assert.Equal(t, "2026-04-01", r.FormValue("startDate"))
		assert.Equal(t, "2026-04-04", r.FormValue("endDate"))
		assert.Equal(t, "Ana", r.FormValue("guestFirstName"))
		assert.Equal(t, "Perez", r.FormValue("guestLastName"))
		assert.Equal(t, "rt-1", r.FormValue("rooms[0][roomTypeID]"))
		assert.Equal(t, "2", r.FormValue("adults[0][quantity]"))
		assert.Equal(t, "1", r.FormValue("children[0][quantity]"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"reservationID": "res-9",
			"guestID":       "g-5",
			"status":        "confirmed",
		})
	})

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, availabilityCachePrefix+"2026-04-01:2026-04-04", "[]", time.Minute))

	result, err := client.CreateReservation(ctx, CreateReservationParams{
		RoomTypeID: "rt-1",
		CheckIn:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		Children:   1,
		FirstName:  "Ana",
		LastName:   "Perez",
		Email:      "ana.perez@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "res-9", result.ReservationID)
	assert.Equal(t, "g-5", result.GuestID)
	assert.Equal(t, "confirmed", result.Status)

	_, ok, err := cache.Get(ctx, availabilityCachePrefix+"2026-04-01:2026-04-04")
	require.NoError(t, err)
	assert.False(t, ok, "cached availability must be dropped after a booking")
}

func TestCreateReservationRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "room type sold out",
		})
	})

	_, err := client.CreateReservation(context.Background(), CreateReservationParams{
		RoomTypeID: "rt-1",
		CheckIn:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Adults:     1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room type sold out")
}
