package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Success    bool   `json:"success"`
	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(err error, code int) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
		ErrorText:      err.Error(),
	}
}

// ErrFromError maps service errors to responses.
func ErrFromError(err error) render.Renderer {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs), errors.Is(err, gerr.ErrInvalidRequest):
		return newErrResponse(err, http.StatusBadRequest)
	case errors.Is(err, gerr.ErrUnknownAccount):
		return newErrResponse(err, http.StatusNotFound)
	case errors.Is(err, gerr.ErrInvalidPassword), errors.Is(err, gerr.ErrUnauthorized):
		return newErrResponse(err, http.StatusUnauthorized)
	case errors.Is(err, gerr.ErrImportInProgress):
		return newErrResponse(err, http.StatusConflict)
	default:
		return newErrResponse(err, http.StatusInternalServerError)
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadRequest)
}

var ErrUnauthorized = &ErrResponse{
	Err:            gerr.ErrUnauthorized,
	HTTPStatusCode: http.StatusUnauthorized,
	StatusText:     http.StatusText(http.StatusUnauthorized),
	ErrorText:      gerr.ErrUnauthorized.Error(),
}
