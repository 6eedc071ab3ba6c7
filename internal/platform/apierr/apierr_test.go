package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "nil", err: nil, wantStatus: http.StatusOK},
		{name: "not_found_wrapped", err: fmt.Errorf("load decision: %w", ErrNotFound), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "invalid", err: Invalid("rating %d out of range", 9), wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "explicit", err: New(http.StatusConflict, "busy", errors.New("x")), wantStatus: http.StatusConflict, wantCode: "busy"},
		{name: "other", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := Status(tc.err)
			if status != tc.wantStatus || code != tc.wantCode {
				t.Fatalf("Status()=(%d,%q), want (%d,%q)", status, code, tc.wantStatus, tc.wantCode)
			}
		})
	}
}
