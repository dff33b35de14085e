package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/apierr"
)

func TestFromErrorClassifiesSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("post p1: %w", apperrors.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("bad: %w", apperrors.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{fmt.Errorf("queue full: %w", apperrors.ErrUnavailable), http.StatusServiceUnavailable, "unavailable"},
		{apierr.New(http.StatusForbidden, "forbidden", errors.New("nope")), http.StatusForbidden, "forbidden"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "fallback"},
	}
	for _, tc := range cases {
		got := FromError(tc.err, "fallback")
		if got.Status != tc.status || got.Code != tc.code {
			t.Fatalf("%v: want=%d/%s got=%d/%s", tc.err, tc.status, tc.code, got.Status, got.Code)
		}
	}
}

func TestRespondServiceErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondServiceError(c, fmt.Errorf("post p1: %w", apperrors.ErrNotFound), "load_failed")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", rec.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "not_found" || env.Error.Message != "post p1: not found" {
		t.Fatalf("envelope: got=%+v", env.Error)
	}
}
