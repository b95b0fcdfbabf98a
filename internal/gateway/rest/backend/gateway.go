package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"maak/internal/entities"
	retrierconfig "maak/pkg/retrier"
	"maak/pkg/retrier/backoff_adapter"
)

const serviceName = "marketplace-backend"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// actorHeader carries the authenticated end-user identity to the backend,
// which enforces row-level authorization against it. Identity verification
// itself happens at the edge, not here.
const actorHeader = "X-Actor-Id"

// errTransient marks failures worth retrying on idempotent reads:
// transport errors and upstream unavailability. Mutations are never
// retried, the backend is the authority on whether they happened.
var errTransient = errors.New("backend: transient failure")

// Client talks to the hosted marketplace backend: RPC procedures under
// /rpc/{fn} and row reads/writes on the table endpoints, both with a JSON
// envelope. It is the only place that knows column names and the error
// vocabulary of the backend.
type Client struct {
	baseURL string
	apiKey  string
	http    httpDoer
	retrier retrier
}

func New(baseURL, apiKey string, doer httpDoer) *Client {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isTransient,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    doer,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func isTransient(err error) bool {
	return errors.Is(err, errTransient)
}

// Ping verifies connectivity at boot. Reuses the read path so a dead
// backend is reported before the server starts accepting traffic.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "code")
	query.Set("limit", "1")

	var rows []json.RawMessage
	return c.read(ctx, "Ping", "", "wilayas", query, &rows)
}

// --------------------------------------------------------------------
// RPC procedures (transition operations, always single-attempt)
// --------------------------------------------------------------------

func (c *Client) ProposeDeal(ctx context.Context, actor, parcelRequestID, tripID string) (string, error) {
	args := map[string]any{
		"parcel_request_id": parcelRequestID,
		"trip_id":           tripID,
	}

	var dealID string
	err := c.call(ctx, "ProposeDeal", actor, "propose_deal", args, &dealID)
	if err != nil {
		return "", fmt.Errorf("gateway backend, propose deal: %w", err)
	}
	return dealID, nil
}

func (c *Client) AcceptDeal(ctx context.Context, actor, dealID string) error {
	args := map[string]any{
		"deal_id": dealID,
	}

	err := c.call(ctx, "AcceptDeal", actor, "accept_deal", args, nil)
	if err != nil {
		return fmt.Errorf("gateway backend, accept deal %s: %w", dealID, err)
	}
	return nil
}

func (c *Client) ConfirmPickup(ctx context.Context, actor, dealID string, contentOK, sizeOK bool, photoURL string) (bool, error) {
	args := map[string]any{
		"deal_id":    dealID,
		"content_ok": contentOK,
		"size_ok":    sizeOK,
		"photo_url":  photoURL,
	}

	var ok bool
	err := c.call(ctx, "ConfirmPickup", actor, "confirm_pickup", args, &ok)
	if err != nil {
		return false, fmt.Errorf("gateway backend, confirm pickup %s: %w", dealID, err)
	}
	return ok, nil
}

// verifyRow is the wire shape of the verify_delivery_code response.
type verifyRow struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) VerifyDeliveryCode(ctx context.Context, actor, dealID, code string) (entities.CodeVerification, error) {
	args := map[string]any{
		"deal_id": dealID,
		"code":    code,
	}

	var row verifyRow
	err := c.call(ctx, "VerifyDeliveryCode", actor, "verify_delivery_code", args, &row)
	if err != nil {
		return entities.CodeVerification{}, fmt.Errorf("gateway backend, verify delivery code %s: %w", dealID, err)
	}
	return entities.CodeVerification{
		Success: row.Success,
		Message: row.Message,
	}, nil
}

// DeliveryCode fetches the sender-visible secret for a deal. The client
// never generates or checks it, only displays it.
func (c *Client) DeliveryCode(ctx context.Context, actor, dealID string) (string, error) {
	args := map[string]any{
		"deal_id": dealID,
	}

	var code string
	err := c.call(ctx, "DeliveryCode", actor, "get_delivery_code", args, &code)
	if err != nil {
		return "", fmt.Errorf("gateway backend, delivery code %s: %w", dealID, err)
	}
	return code, nil
}

func (c *Client) HasActiveDeal(ctx context.Context, actor string) (bool, error) {
	var active bool
	err := c.call(ctx, "HasActiveDeal", actor, "has_active_deal", map[string]any{}, &active)
	if err != nil {
		return false, fmt.Errorf("gateway backend, has active deal: %w", err)
	}
	return active, nil
}

// ExpireOldPosts triggers the backend's expiry sweep. Best-effort by
// contract: callers log and swallow the error.
func (c *Client) ExpireOldPosts(ctx context.Context) error {
	err := c.call(ctx, "ExpireOldPosts", "", "expire_old_posts", map[string]any{}, nil)
	if err != nil {
		return fmt.Errorf("gateway backend, expire old posts: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------
// Table reads
// --------------------------------------------------------------------

func (c *Client) ListActiveTrips(ctx context.Context) ([]entities.Trip, error) {
	query := url.Values{}
	query.Set("status", "eq."+entities.TripActive.String())
	query.Set("order", "departure_at.asc")

	var rows []tripRow
	if err := c.read(ctx, "ListActiveTrips", "", "trips", query, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, list trips: %w", err)
	}
	return tripsToDomain(rows)
}

func (c *Client) ListActiveParcelRequests(ctx context.Context) ([]entities.ParcelRequest, error) {
	query := url.Values{}
	query.Set("status", "eq."+entities.ParcelActive.String())
	query.Set("order", "window_start.asc")

	var rows []parcelRow
	if err := c.read(ctx, "ListActiveParcelRequests", "", "parcel_requests", query, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, list parcel requests: %w", err)
	}
	return parcelsToDomain(rows)
}

func (c *Client) GetTrip(ctx context.Context, id string) (*entities.Trip, error) {
	var rows []tripRow
	if err := c.read(ctx, "GetTrip", "", "trips", byID(id), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, get trip %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, get trip %s: %w", id, ErrNotFound)
	}
	return tripToDomain(rows[0])
}

func (c *Client) GetParcelRequest(ctx context.Context, id string) (*entities.ParcelRequest, error) {
	var rows []parcelRow
	if err := c.read(ctx, "GetParcelRequest", "", "parcel_requests", byID(id), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, get parcel request %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, get parcel request %s: %w", id, ErrNotFound)
	}
	return parcelToDomain(rows[0])
}

func (c *Client) GetDeal(ctx context.Context, actor, id string) (*entities.Deal, error) {
	var rows []dealRow
	if err := c.read(ctx, "GetDeal", actor, "deals", byID(id), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, get deal %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, get deal %s: %w", id, ErrNotFound)
	}
	return dealToDomain(rows[0])
}

// FindDealByPair returns the existing non-cancelled deal for a
// (trip, parcel) pair, or nil when the pair is free. This is the
// duplicate-proposal guard.
func (c *Client) FindDealByPair(ctx context.Context, actor, tripID, parcelRequestID string) (*entities.Deal, error) {
	query := url.Values{}
	query.Set("trip_id", "eq."+tripID)
	query.Set("parcel_request_id", "eq."+parcelRequestID)

	var rows []dealRow
	if err := c.read(ctx, "FindDealByPair", actor, "deals", query, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, find deal by pair: %w", err)
	}

	for _, row := range rows {
		deal, err := dealToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("gateway backend, find deal by pair: %w", err)
		}
		if entities.NormalizeDealStatus(deal.Status) != entities.DealCancelled {
			return deal, nil
		}
	}
	return nil, nil
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	var rows []profileRow
	if err := c.read(ctx, "GetProfile", "", "profiles", byID(userID), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, get profile %s: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, get profile %s: %w", userID, ErrNotFound)
	}
	return profileToDomain(rows[0])
}

// RatingAverage reads the ratings table and averages locally. Returns nil
// for an unrated user, which scoring treats as the neutral prior.
func (c *Client) RatingAverage(ctx context.Context, userID string) (*float64, error) {
	query := url.Values{}
	query.Set("rated_user_id", "eq."+userID)
	query.Set("select", "stars")

	var rows []ratingRow
	if err := c.read(ctx, "RatingAverage", "", "ratings", query, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, rating average %s: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	sum := 0
	for _, row := range rows {
		if row.Stars == nil {
			return nil, decodeError("ratings", "stars")
		}
		sum += *row.Stars
	}
	avg := float64(sum) / float64(len(rows))
	return &avg, nil
}

// --------------------------------------------------------------------
// Table writes
// --------------------------------------------------------------------

// InsertTrip writes a new trip row. With extended=false only the
// pre-declared minimal column set is sent; that variant exists solely as
// the one-shot fallback after an unknown-column error.
func (c *Client) InsertTrip(ctx context.Context, draft entities.TripDraft, extended bool) (*entities.Trip, error) {
	var rows []tripRow
	if err := c.write(ctx, "InsertTrip", draft.OwnerID, "trips", tripInsertRow(draft, extended), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, insert trip: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, insert trip: %w", decodeError("trips", "returned row"))
	}
	return tripToDomain(rows[0])
}

func (c *Client) InsertParcelRequest(ctx context.Context, draft entities.ParcelDraft, extended bool) (*entities.ParcelRequest, error) {
	var rows []parcelRow
	if err := c.write(ctx, "InsertParcelRequest", draft.OwnerID, "parcel_requests", parcelInsertRow(draft, extended), &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, insert parcel request: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, insert parcel request: %w", decodeError("parcel_requests", "returned row"))
	}
	return parcelToDomain(rows[0])
}

func (c *Client) UpdateTripStatus(ctx context.Context, actor, id string, status entities.TripStatus) (*entities.Trip, error) {
	patch := map[string]any{
		"status": status.String(),
	}

	var rows []tripRow
	if err := c.patch(ctx, "UpdateTripStatus", actor, "trips", byID(id), patch, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, update trip status %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, update trip status %s: %w", id, ErrNotFound)
	}
	return tripToDomain(rows[0])
}

func (c *Client) UpdateParcelStatus(ctx context.Context, actor, id string, status entities.ParcelStatus) (*entities.ParcelRequest, error) {
	patch := map[string]any{
		"status": status.String(),
	}

	var rows []parcelRow
	if err := c.patch(ctx, "UpdateParcelStatus", actor, "parcel_requests", byID(id), patch, &rows); err != nil {
		return nil, fmt.Errorf("gateway backend, update parcel status %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gateway backend, update parcel status %s: %w", id, ErrNotFound)
	}
	return parcelToDomain(rows[0])
}

// --------------------------------------------------------------------
// Plumbing
// --------------------------------------------------------------------

func byID(id string) url.Values {
	query := url.Values{}
	query.Set("id", "eq."+id)
	return query
}

// call invokes an RPC procedure. Single attempt: procedures mutate state
// and the backend alone decides whether they happened.
func (c *Client) call(ctx context.Context, method, actor, fn string, args map[string]any, out any) error {
	return c.executeWithMetrics(ctx, method, false, func(ctx context.Context) error {
		return c.roundTrip(ctx, http.MethodPost, c.baseURL+"/rpc/"+fn, actor, nil, args, out)
	})
}

// read fetches rows. Idempotent, so transient failures are retried with
// bounded backoff.
func (c *Client) read(ctx context.Context, method, actor, table string, query url.Values, out any) error {
	return c.executeWithMetrics(ctx, method, true, func(ctx context.Context) error {
		return c.roundTrip(ctx, http.MethodGet, c.tableURL(table, query), actor, nil, nil, out)
	})
}

func (c *Client) write(ctx context.Context, method, actor, table string, row map[string]any, out any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return c.executeWithMetrics(ctx, method, false, func(ctx context.Context) error {
		return c.roundTrip(ctx, http.MethodPost, c.tableURL(table, nil), actor, headers, row, out)
	})
}

func (c *Client) patch(ctx context.Context, method, actor, table string, query url.Values, patch map[string]any, out any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return c.executeWithMetrics(ctx, method, false, func(ctx context.Context) error {
		return c.roundTrip(ctx, http.MethodPatch, c.tableURL(table, query), actor, headers, patch, out)
	})
}

func (c *Client) tableURL(table string, query url.Values) string {
	u := c.baseURL + "/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) executeWithMetrics(ctx context.Context, method string, retryable bool, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	wrapped := func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	}

	var err error
	if retryable {
		err = c.retrier.ExecuteWithContext(ctx, wrapped)
	} else {
		err = wrapped(ctx)
	}

	outcome := outcomeLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, httpMethod, rawURL, actor string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set(actorHeader, actor)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", errTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusBadGateway ||
			resp.StatusCode == http.StatusServiceUnavailable ||
			resp.StatusCode == http.StatusGatewayTimeout {
			return fmt.Errorf("%w: http status %d", errTransient, resp.StatusCode)
		}

		var e apiError
		if jsonErr := json.Unmarshal(raw, &e); jsonErr != nil {
			e = apiError{Message: strings.TrimSpace(string(raw))}
		}
		return classify(resp.StatusCode, e)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrPrecondition):
		return "precondition"
	case errors.Is(err, ErrUnknownColumn):
		return "unknown_column"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, errTransient):
		return "transient"
	default:
		return "error"
	}
}
