package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/pinpost/internal/database"
	"github.com/mdouchement/pinpost/internal/geo"
	"github.com/mdouchement/pinpost/internal/pubsub"
	"github.com/mdouchement/pinpost/internal/server/middlewares"
	"github.com/mdouchement/pinpost/internal/server/service"
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	Geocoder geo.Client
	Events   *pubsub.Broker
	// Reference is the point against which item quadrants are computed.
	Reference geo.Point
	// TokenResolver rejects bearer tokens; nil accepts any non-empty token.
	TokenResolver middlewares.TokenResolver
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")
	restricted := router.Group("")
	restricted.Use(middlewares.Bearer(ctrl.TokenResolver))

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// item handlers
	//
	item := &item{
		svc: service.NewItem(ctrl.Database, ctrl.Geocoder, ctrl.Events, ctrl.Reference),
	}
	restricted.POST("/items", item.Create)
	restricted.GET("/items", item.List)
	restricted.GET("/items/:id", item.Find)
	restricted.PATCH("/items/:id", item.Update)
	restricted.DELETE("/items/:id", item.Delete)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
