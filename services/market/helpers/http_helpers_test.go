package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"marketplace/internal/marketerrors"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "validation",
			err:            fmt.Errorf("service: %w", &marketerrors.ValidationError{Entity: "bid"}),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation failed",
		},
		{
			name:           "not_found",
			err:            fmt.Errorf("service: failed to get user 3: %w", marketerrors.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "record not found",
		},
		{
			name:           "conflict",
			err:            fmt.Errorf("postgres: %w", marketerrors.ErrConflict),
			expectedStatus: http.StatusConflict,
			expectedMsg:    "integrity conflict",
		},
		{
			name:           "unknown",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, msg := MapErrorToHTTP(tc.err)
			require.Equal(t, tc.expectedStatus, status)
			require.Equal(t, tc.expectedMsg, msg)
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected int64
		ok       bool
	}{
		{path: "/items/12", expected: 12, ok: true},
		{path: "/items/-3", expected: -3, ok: true},
		{path: "/items/abc", ok: false},
		{path: "/items/1.5", ok: false},
		{path: "/items/99999999999999999999", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			var (
				got int64
				ok  bool
			)
			router := gin.New()
			router.GET("/items/:id", func(c *gin.Context) {
				got, ok = ParseID(c, "test", "id")
				if ok {
					c.Status(http.StatusNoContent)
				}
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.expected, got)
				require.Equal(t, http.StatusNoContent, w.Code)
			} else {
				require.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestHandleServiceError_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		expectedError string
	}{
		{
			name:          "conflict_hides_driver_detail",
			err:           fmt.Errorf("service: failed to create bid: postgres: insert bid: %w: foreign key violation (bids_advert_id_fkey)", marketerrors.ErrConflict),
			expectedError: "integrity conflict",
		},
		{
			name:          "not_found_hides_chain",
			err:           fmt.Errorf("service: failed to get user 9: find user 9: %w", marketerrors.ErrNotFound),
			expectedError: "record not found",
		},
		{
			name:          "server_error_hides_detail",
			err:           errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			expectedError: "internal server error",
		},
		{
			name: "validation_lists_fields_only",
			err: fmt.Errorf("service: %w", &marketerrors.ValidationError{
				Entity: "location",
				Fields: []marketerrors.FieldError{{Field: "name", Rule: "notblank"}},
			}),
			expectedError: "invalid location: name (notblank)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.GET("/fail", func(c *gin.Context) {
				HandleServiceError(c, "test", tc.err, nil)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.expectedError, resp["error"])
		})
	}
}
