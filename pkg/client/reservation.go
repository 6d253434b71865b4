package client

import (
	"fmt"
	"net/url"
	"time"

	"varaamo/pkg/model"
)

// ReservationClient is a typed client for the reservations API, used by
// the integration suite and handy for smoke-testing a deployment.
type ReservationClient struct {
	httpClient *HttpClient
}

func NewReservationClient(baseURL string) *ReservationClient {
	return &ReservationClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ReservationClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/reservations", body)
}

func (c *ReservationClient) CreateRaw(rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/v1/reservations", rawBody)
}

func (c *ReservationClient) CreateIdempotent(body any, idempotencyKey string) (*Response, error) {
	return c.httpClient.POSTWithHeaders("/api/v1/reservations", body, map[string]string{
		"Idempotency-Key": idempotencyKey,
	})
}

func (c *ReservationClient) ListAll(limit, offset int) (*Response, error) {
	path := fmt.Sprintf("/api/v1/reservations?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *ReservationClient) ListByRoom(room string) (*Response, error) {
	return c.httpClient.GET("/api/v1/reservations/room/" + url.PathEscape(room))
}

func (c *ReservationClient) Delete(id int64) (*Response, error) {
	return c.httpClient.DELETE(fmt.Sprintf("/api/v1/reservations/%d", id))
}

func (c *ReservationClient) Rooms() (*Response, error) {
	return c.httpClient.GET("/api/v1/rooms")
}

func (c *ReservationClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

func (c *ReservationClient) DecodeReservation(resp *Response) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := resp.DecodeJSON(&reservation); err != nil {
		return nil, fmt.Errorf("could not decode reservation: %w", err)
	}
	return &reservation, nil
}

func (c *ReservationClient) DecodeReservations(resp *Response) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := resp.DecodeJSON(&reservations); err != nil {
		return nil, fmt.Errorf("could not decode reservation list: %w", err)
	}
	return reservations, nil
}
