package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/pinpost/internal/pperror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler is a middleware that formats rendered errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if !c.Response().Committed {
		switch err := err.(type) {
		case *echo.HTTPError:
			logrus.WithError(err.Internal).Warn("echo error")
			_ = c.JSON(err.Code, echo.Map{
				"detail": err.Message,
			})
		case *pperror.PPError:
			status := pperror.StatusCode(err)
			if status < 500 {
				_ = c.JSON(status, err)
				return
			}

			internal(err, c)
		default:
			internal(err, c)
		}
	}
}

// internal renders a generic 500 with an opaque error id.
// The error detail is only logged server-side.
func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logrus.WithField("error_id", id).Error(err.Error())

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"detail": fmt.Sprintf("Unexpected error (id: %s)", id),
	})
}
