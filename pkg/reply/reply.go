// Package reply renders handler results in the {message} envelope the API uses.
package reply

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"farmapi/pkg/apperr"
)

// ErrBadPathID is returned by PathID for ids that are not unsigned integers.
var ErrBadPathID = errors.New("path id is not an unsigned integer")

func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

// Error maps err onto its status. Server-side failures are logged with the
// cause and reported without it.
func Error(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	log := zerolog.Ctx(c.Request().Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("path", c.Path()).Msg("request rejected")
	}
	return Message(c, status, apperr.PublicMessage(err))
}

// PathID parses an integer route parameter.
func PathID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, ErrBadPathID
	}
	return uint(v), nil
}

// NotFound is the response for unroutable paths, including non-integer ids.
func NotFound(c echo.Context) error {
	return Message(c, http.StatusNotFound, "Not Found")
}

// Bind decodes the request body into v, reporting malformed JSON as an InvalidField error.
func Bind(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return apperr.Invalid("invalid json body")
	}
	return nil
}
