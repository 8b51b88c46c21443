package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	httpadapter "meddelivery/internal/adapters/in/http"
	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"
)

const DefaultRequestTimeout = 15 * time.Second

var (
	// ErrTransient wraps transport failures. The request may or may not have
	// reached the server; nothing is retried.
	ErrTransient = errors.New("backend is unreachable")

	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// APIError is an error response of the backend. It unwraps to the errs
// sentinel matching its status, so callers can use errors.Is on it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return errs.ErrValueIsInvalid
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return errs.ErrActionIsForbidden
	case http.StatusNotFound:
		return errs.ErrObjectNotFound
	case http.StatusConflict:
		return errs.ErrTransitionIsInvalid
	default:
		return ErrUnexpectedStatus
	}
}

// Client calls the REST API with the session's bearer token.
type Client struct {
	baseURL    string
	session    *Session
	httpClient *http.Client
}

// NewClient uses a client with DefaultRequestTimeout when httpClient is nil.
func NewClient(baseURL string, session *Session, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultRequestTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + httpadapter.BasePath,
		session:    session,
		httpClient: httpClient,
	}
}

// SearchMedicines passes origin as lat/lng when given.
func (c *Client) SearchMedicines(ctx context.Context, text string, origin *kernel.Location) ([]cart.SearchResult, error) {
	params := url.Values{}
	params.Set("q", text)
	if origin != nil {
		params.Set("lat", strconv.FormatFloat(origin.Latitude(), 'f', -1, 64))
		params.Set("lng", strconv.FormatFloat(origin.Longitude(), 'f', -1, 64))
	}

	var results []cart.SearchResult
	err := c.do(ctx, http.MethodGet, "/medicines/search?"+params.Encode(), nil, &results)
	return results, err
}

// SubmitOrder places one pharmacy's order and returns it as the backend
// stored it, total and status included.
func (c *Client) SubmitOrder(ctx context.Context, submission cart.Submission) (queries.OrderResponse, error) {
	items := make([]httpadapter.NewOrderItemRequest, 0, len(submission.Items))
	for _, it := range submission.Items {
		items = append(items, httpadapter.NewOrderItemRequest{
			MedicineID:   it.MedicineID().Google(),
			MedicineName: it.MedicineName(),
			Quantity:     it.Quantity(),
			UnitPrice:    it.UnitPrice(),
		})
	}

	body := httpadapter.NewOrderRequest{
		PharmacyID: submission.PharmacyID.Google(),
		Items:      items,
		DeliveryAddress: httpadapter.AddressRequest{
			Latitude:  submission.DeliveryAddress.Latitude(),
			Longitude: submission.DeliveryAddress.Longitude(),
			Address:   submission.DeliveryAddress.Address(),
		},
		PaymentMethod: submission.PaymentMethod.String(),
		Notes:         submission.Notes,
	}

	var created queries.OrderResponse
	err := c.do(ctx, http.MethodPost, "/orders", body, &created)
	return created, err
}

func (c *Client) ChangeOrderStatus(ctx context.Context, orderID kernel.UUID, target order.Status) (queries.OrderResponse, error) {
	body := httpadapter.StatusChangeRequest{Status: target.String()}
	var resp queries.OrderResponse
	err := c.do(ctx, http.MethodPut, "/orders/"+orderID.String()+"/status", body, &resp)
	return resp, err
}

func (c *Client) AssignDriver(ctx context.Context, orderID, driverID kernel.UUID) (queries.OrderResponse, error) {
	body := httpadapter.DriverAssignmentRequest{DriverID: driverID.Google()}
	var resp queries.OrderResponse
	err := c.do(ctx, http.MethodPost, "/orders/"+orderID.String()+"/assign-driver", body, &resp)
	return resp, err
}

func (c *Client) GetOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	var resp queries.OrderResponse
	err := c.do(ctx, http.MethodGet, "/orders/"+orderID.String(), nil, &resp)
	return resp, err
}

func (c *Client) GetMyOrders(ctx context.Context) ([]queries.OrderResponse, error) {
	var resp []queries.OrderResponse
	err := c.do(ctx, http.MethodGet, "/orders/my", nil, &resp)
	return resp, err
}

func (c *Client) GetAvailableOrders(ctx context.Context) ([]queries.OrderResponse, error) {
	var resp []queries.OrderResponse
	err := c.do(ctx, http.MethodGet, "/drivers/available-orders", nil, &resp)
	return resp, err
}

func (c *Client) RegisterDriver(ctx context.Context, profile driver.Profile) (queries.DriverResponse, error) {
	body := httpadapter.NewDriverRequest{
		VehicleType:   profile.VehicleType,
		VehicleNumber: profile.VehicleNumber,
		LicenseNumber: profile.LicenseNumber,
		Address:       profile.Address,
		City:          profile.City,
		State:         profile.State,
	}
	var resp queries.DriverResponse
	err := c.do(ctx, http.MethodPost, "/drivers", body, &resp)
	return resp, err
}

func (c *Client) GetMyDriver(ctx context.Context) (queries.DriverResponse, error) {
	var resp queries.DriverResponse
	err := c.do(ctx, http.MethodGet, "/drivers/my", nil, &resp)
	return resp, err
}

// UpdateDriverLocation reports where the signed-in driver is now.
func (c *Client) UpdateDriverLocation(ctx context.Context, location kernel.Location) (queries.DriverResponse, error) {
	body := httpadapter.AddressRequest{
		Latitude:  location.Latitude(),
		Longitude: location.Longitude(),
		Address:   location.Address(),
	}
	var resp queries.DriverResponse
	err := c.do(ctx, http.MethodPut, "/drivers/location", body, &resp)
	return resp, err
}

// do sends body as JSON and decodes a 2xx response into out, if out is not
// nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.session.Token()
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %w", marshalErr)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransient, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body httpadapter.Error
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil && json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
