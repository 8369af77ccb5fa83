package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			resp, err := resty.New().R().Get(srv.URL)
			require.NoError(t, err)

			assert.ErrorIs(t, mapHTTPError(resp), tt.wantErr)
		})
	}
}

func TestMapHTTPError_SuccessAndUnknown(t *testing.T) {
	status := http.StatusNoContent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	assert.NoError(t, mapHTTPError(resp))

	status = http.StatusTeapot
	resp, err = resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	assert.EqualError(t, mapHTTPError(resp), "http 418: I'm a teapot")
}
