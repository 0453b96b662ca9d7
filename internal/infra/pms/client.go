package pms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"
)

// Client is the surface the sync and booking layers depend on. HTTPClient
// implements it against the real PMS; tests supply mocks.
type Client interface {
	ListRoomTypes(ctx context.Context) ([]RoomType, error)
	CheckAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]Availability, error)
	ListGuests(ctx context.Context, params ListParams) ([]Record, error)
	ListReservations(ctx context.Context, params ListParams) ([]Record, error)
	CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
	InvalidateInventoryCache(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL      string
	apiKey       string
	propertyID   string
	pageSize     int
	maxPages     int
	catalogTTL   time.Duration
	inventoryTTL time.Duration
	httpClient   *http.Client
	cache        Cache
}

func NewHTTPClient(cfg config.PMSConfig, cache Cache) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimSuffix(cfg.APIURL, "/"),
		apiKey:       cfg.APIKey,
		propertyID:   cfg.PropertyID,
		pageSize:     cfg.PageSize,
		maxPages:     cfg.MaxPages,
		catalogTTL:   cfg.CatalogCacheTTL,
		inventoryTTL: cfg.InventoryCacheTTL,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		cache:        cache,
	}
}

// listEnvelope is the common PMS list response shape.
type listEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
	Message string          `json:"message"`
}

func (c *HTTPClient) doGet(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	query.Set("propertyID", c.propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build pms request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "pms request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read pms response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// listPaged pulls every page of a list endpoint up to the page cap. The cap
// bounds a single sync pass against runaway or looping pagination.
func (c *HTTPClient) listPaged(ctx context.Context, endpoint string, params ListParams) ([]Record, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = c.pageSize
	}

	var all []Record
	for page := 1; page <= c.maxPages; page++ {
		query := url.Values{}
		query.Set("pageNumber", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(pageSize))
		if params.ModifiedSince != "" {
			query.Set("modifiedFrom", params.ModifiedSince)
		}

		body, err := c.doGet(ctx, endpoint, query)
		if err != nil {
			return nil, err
		}

		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, errs.Wrap(err, "failed to decode pms list response")
		}
		if !envelope.Success {
			return nil, errs.Newf("pms reported failure: %s", envelope.Message)
		}

		var records []Record
		if len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, &records); err != nil {
				return nil, errs.Wrap(err, "failed to decode pms records")
			}
		}
		all = append(all, records...)

		if len(records) < pageSize {
			break
		}
	}
	return all, nil
}

const (
	roomTypesCacheKey       = "pms:room_types"
	availabilityCachePrefix = "pms:availability:"
)

func (c *HTTPClient) ListRoomTypes(ctx context.Context) ([]RoomType, error) {
	if cached, ok, err := c.cache.Get(ctx, roomTypesCacheKey); err == nil && ok {
		var types []RoomType
		if err := json.Unmarshal([]byte(cached), &types); err == nil {
			return types, nil
		}
	}

	body, err := c.doGet(ctx, "/getRoomTypes", url.Values{})
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.Wrap(err, "failed to decode room types response")
	}
	if !envelope.Success {
		return nil, errs.Newf("pms reported failure: %s", envelope.Message)
	}

	var types []RoomType
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &types); err != nil {
			return nil, errs.Wrap(err, "failed to decode room types")
		}
	}

	if raw, err := json.Marshal(types); err == nil {
		_ = c.cache.Set(ctx, roomTypesCacheKey, string(raw), c.catalogTTL)
	}
	return types, nil
}

func (c *HTTPClient) CheckAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]Availability, error) {
	cacheKey := fmt.Sprintf("%s%s:%s",
		availabilityCachePrefix,
		checkIn.Format("2006-01-02"),
		checkOut.Format("2006-01-02"),
	)
	if cached, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
		var avail []Availability
		if err := json.Unmarshal([]byte(cached), &avail); err == nil {
			return avail, nil
		}
	}

	query := url.Values{}
	query.Set("startDate", checkIn.Format("2006-01-02"))
	query.Set("endDate", checkOut.Format("2006-01-02"))

	body, err := c.doGet(ctx, "/getAvailableRoomTypes", query)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.Wrap(err, "failed to decode availability response")
	}
	if !envelope.Success {
		return nil, errs.Newf("pms reported failure: %s", envelope.Message)
	}

	var avail []Availability
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &avail); err != nil {
			return nil, errs.Wrap(err, "failed to decode availability")
		}
	}

	if raw, err := json.Marshal(avail); err == nil {
		_ = c.cache.Set(ctx, cacheKey, string(raw), c.inventoryTTL)
	}
	return avail, nil
}

func (c *HTTPClient) ListGuests(ctx context.Context, params ListParams) ([]Record, error) {
	return c.listPaged(ctx, "/getGuestList", params)
}

func (c *HTTPClient) ListReservations(ctx context.Context, params ListParams) ([]Record, error) {
	return c.listPaged(ctx, "/getReservations", params)
}

// CreateReservation pushes a booking to the PMS. The endpoint only accepts
// form encoding, unlike the JSON read endpoints.
func (c *HTTPClient) CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	form := url.Values{}
	form.Set("propertyID", c.propertyID)
	form.Set("startDate", params.CheckIn.Format("2006-01-02"))
	form.Set("endDate", params.CheckOut.Format("2006-01-02"))
	form.Set("guestFirstName", params.FirstName)
	form.Set("guestLastName", params.LastName)
	form.Set("guestEmail", params.Email)
	form.Set("guestPhone", params.Phone)
	form.Set("guestCountry", params.Country)
	form.Set("rooms[0][roomTypeID]", params.RoomTypeID)
	form.Set("rooms[0][quantity]", "1")
	form.Set("adults[0][roomTypeID]", params.RoomTypeID)
	form.Set("adults[0][quantity]", strconv.Itoa(params.Adults))
	form.Set("children[0][roomTypeID]", params.RoomTypeID)
	form.Set("children[0][quantity]", strconv.Itoa(params.Children))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/postReservation", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build pms reservation request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "pms reservation request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read pms reservation response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Success       bool   `json:"success"`
		ReservationID string `json:"reservationID"`
		GuestID       string `json:"guestID"`
		Status        string `json:"status"`
		Message       string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.Wrap(err, "failed to decode pms reservation response")
	}
	if !envelope.Success {
		return nil, errs.Newf("pms rejected reservation: %s", envelope.Message)
	}

	// A new booking changes remote inventory, so cached availability is stale.
	_ = c.InvalidateInventoryCache(ctx)

	return &CreateReservationResult{
		ReservationID: envelope.ReservationID,
		GuestID:       envelope.GuestID,
		Status:        envelope.Status,
	}, nil
}

func (c *HTTPClient) InvalidateInventoryCache(ctx context.Context) error {
	return c.cache.DeleteByPrefix(ctx, availabilityCachePrefix)
}
