package geo

import (
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// DefaultTimeout bounds a postcode lookup.
// The upstream service defines no SLA so a lookup must not hold a request open forever.
const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned when the geocoding service has no place for a postcode.
// It is a validation-level outcome, not a system fault.
var ErrNotFound = errors.New("no place found for postcode")

type (
	// A Client defines all interactions that can be performed on a geocoding server.
	Client interface {
		// Resolve returns the place matching the given postcode.
		// It returns ErrNotFound when the postcode is unknown to the service.
		Resolve(postcode string) (*Place, error)
	}

	client struct {
		http     *http.Client
		endpoint string
	}
)

// NewDefaultClient returns a new Client with a timeout-bounded HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(&http.Client{Timeout: DefaultTimeout}, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	_, err := url.Parse(endpoint)
	return &client{endpoint: endpoint, http: c}, errors.Wrap(err, "could not parse endpoint")
}

func (c *client) Resolve(postcode string) (*Place, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse endpoint")
	}
	u.Path = path.Join(u.Path, postcode)

	//
	// Build request
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	//
	// Process response
	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response")
	}

	return parsePlace(payload)
}

// parsePlace extracts the first place of a geocoding payload.
// Coordinates are formatted as JSON strings by the upstream service.
func parsePlace(payload []byte) (*Place, error) {
	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse response")
	}

	places := v.GetArray("places")
	if len(places) == 0 {
		return nil, ErrNotFound
	}
	p := places[0]

	latitude, err := strconv.ParseFloat(string(p.GetStringBytes("latitude")), 64)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse latitude")
	}
	longitude, err := strconv.ParseFloat(string(p.GetStringBytes("longitude")), 64)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse longitude")
	}

	return &Place{
		Latitude:          latitude,
		Longitude:         longitude,
		Name:              string(p.GetStringBytes("place name")),
		State:             string(p.GetStringBytes("state")),
		StateAbbreviation: string(p.GetStringBytes("state abbreviation")),
	}, nil
}
