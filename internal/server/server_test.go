package server_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/pinpost/internal/database"
	"github.com/mdouchement/pinpost/internal/geo"
	"github.com/mdouchement/pinpost/internal/pubsub"
	"github.com/mdouchement/pinpost/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRequestHome(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func TestRequestVersion(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

// geocoder is a canned geo.Client.
type geocoder struct {
	place *geo.Place
	err   error
}

func (g *geocoder) Resolve(postcode string) (*geo.Place, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.place, nil
}

func setup() (engine *echo.Echo, ctrl server.Controller, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "pinpost.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	if err != nil {
		panic(err)
	}

	broker := pubsub.NewBroker(logrus.New())

	ctrl = server.Controller{
		Version:  "test",
		Database: db,
		Geocoder: &geocoder{
			place: &geo.Place{
				Latitude:          40.7484,
				Longitude:         -73.9967,
				Name:              "New York City",
				State:             "New York",
				StateAbbreviation: "NY",
			},
		},
		Events:    broker,
		Reference: geo.Point{Latitude: 40.7128, Longitude: -74.0060},
	}
	engine = server.EchoEngine(ctrl)

	return engine, ctrl, gofight.New(), func() {
		broker.Close()
		db.Close()
		os.RemoveAll(filename)
	}
}
