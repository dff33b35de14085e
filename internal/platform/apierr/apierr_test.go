package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("post not found")
	cases := []struct {
		got    *Error
		status int
		code   string
	}{
		{NotFound(cause), http.StatusNotFound, CodeNotFound},
		{InvalidArgument(cause), http.StatusBadRequest, CodeInvalidArgument},
		{Unavailable(cause), http.StatusServiceUnavailable, CodeUnavailable},
		{Forbidden(cause), http.StatusForbidden, CodeForbidden},
	}
	for _, tc := range cases {
		if tc.got.Status != tc.status || tc.got.Code != tc.code {
			t.Fatalf("%s: want=%d/%s got=%d/%s", tc.code, tc.status, tc.code, tc.got.Status, tc.got.Code)
		}
		if !errors.Is(tc.got, cause) {
			t.Fatalf("%s should unwrap to its cause", tc.code)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := NotFound(errors.New("comment not found")).Error(); got != "comment not found" {
		t.Fatalf("message: want=comment not found got=%q", got)
	}
	if got := New(http.StatusConflict, "", nil).Error(); got != "api error (409)" {
		t.Fatalf("bare status: got=%q", got)
	}
	if got := New(0, CodeForbidden, nil).Error(); got != CodeForbidden {
		t.Fatalf("code only: got=%q", got)
	}
	var nilErr *Error
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
}
