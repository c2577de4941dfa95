package pincode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pincode/452001", r.URL.Path)
		w.Write([]byte(`[{"Status":"Success","PostOffice":[{"District":"Indore","State":"Madhya Pradesh"}]}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	locality, err := client.Lookup(context.Background(), "452001")

	require.NoError(t, err)
	assert.Equal(t, "Indore", locality.City)
	assert.Equal(t, "Madhya Pradesh", locality.State)
}

func TestLookup_InvalidPin_NotQueried(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	for _, pin := range []string{"", "4520", "4520011", "45200a"} {
		_, err := client.Lookup(context.Background(), pin)
		assert.ErrorIs(t, err, ErrInvalidPincode, "pin %q", pin)
	}
	assert.False(t, called, "invalid pins must not hit the API")
}

func TestLookup_UnknownPin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Status":"Error","PostOffice":null}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.Lookup(context.Background(), "999999")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.Lookup(context.Background(), "452001")

	assert.ErrorContains(t, err, "status 503")
}
