package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, method string, err error) (int, httperr.ErrorResponse) {
	ec := echo.New()
	rec := httptest.NewRecorder()
	ctx := ec.NewContext(httptest.NewRequest(method, "/api/test", nil), rec)

	httperr.GetHTTPErrorHandler()(err, ctx)

	var response httperr.ErrorResponse
	if method != http.MethodHead {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	}
	return rec.Code, response
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary  string
		err      error
		status   int
		response httperr.ErrorResponse
	}{
		{"bad request", httperr.BadRequest("Title is required"), http.StatusBadRequest, httperr.ErrorResponse{Error: "Title is required", Code: "BAD_REQUEST"}},
		{"not found", httperr.NotFound("Video not found"), http.StatusNotFound, httperr.ErrorResponse{Error: "Video not found", Code: "NOT_FOUND"}},
		{"internal includes cause", httperr.Internal("Upload failed", errors.New("disk on fire")), http.StatusInternalServerError, httperr.ErrorResponse{Error: "Upload failed: disk on fire", Code: "INTERNAL_ERROR"}},
		{"internal without cause", httperr.Internal("Upload failed", nil), http.StatusInternalServerError, httperr.ErrorResponse{Error: "Upload failed", Code: "INTERNAL_ERROR"}},
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), http.StatusRequestEntityTooLarge, httperr.ErrorResponse{Error: "Request Entity Too Large", Code: "Request Entity Too Large"}},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, httperr.ErrorResponse{Error: "Internal Server Error", Code: "Internal Server Error"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.summary, func(t *testing.T) {
			t.Parallel()

			status, response := handle(t, http.MethodGet, test.err)
			assert.Equal(t, test.status, status)
			assert.Equal(t, test.response, response)
		})
	}
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	t.Parallel()

	status, _ := handle(t, http.MethodHead, httperr.NotFound("Video not found"))
	assert.Equal(t, http.StatusNotFound, status)
}
