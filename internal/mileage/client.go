package mileage

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

// Point is a geocoded location returned by the distance API.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Result is a resolved ground distance between two city/state pairs.
// Origin is the geocoded pickup location, nil when the API omits it.
type Result struct {
	Miles  int
	Origin *Point
}

// Lookup resolves the driving distance from an origin city/state to a
// destination city/state. Implementations must return an error rather
// than a fabricated distance when the upstream API fails.
type Lookup interface {
	Distance(originCity, originState, destCity, destState string) (*Result, error)
}

// Client calls a third-party directions API keyed by credentials
// supplied through the environment at process start.
type Client struct {
	baseURI string
	apiKey  string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURI: os.Getenv("DISTANCE_API_BASE_URI"),
		apiKey:  os.Getenv("DISTANCE_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBase builds a client against an explicit endpoint.
func NewClientWithBase(baseURI, apiKey string) *Client {
	return &Client{
		baseURI: baseURI,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type apiResponse struct {
	Miles          float64 `json:"miles"`
	OriginLocation *Point  `json:"origin_location"`
}

func (c *Client) Distance(originCity, originState, destCity, destState string) (*Result, error) {
	u, err := url.Parse(c.baseURI + "/v1/distance")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("origin", originCity+","+originState)
	q.Set("destination", destCity+","+destState)
	q.Set("units", "imperial")
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("transId", uuid.New().String())
	req.Header.Set("transactionSrc", "freight_ledger")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("distance request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Miles < 0 {
		return nil, fmt.Errorf("distance API returned unusable mileage %v", body.Miles)
	}

	return &Result{
		Miles:  int(math.Round(body.Miles)),
		Origin: body.OriginLocation,
	}, nil
}
