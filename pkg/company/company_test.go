package company

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileJSON = `{
	"company_name": "Acme Labs",
	"industry": "robotics",
	"mission": "build robots",
	"products": ["Robot Arm"],
	"services": ["Robot Repair"],
	"contact_info": "hello@acme.test",
	"phone": "+1 555 0100",
	"address": "Testville",
	"website": "https://acme.test",
	"about": "about acme"
}`

func TestGetProfileFetchesAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(profileJSON))
	}))
	defer srv.Close()

	c := NewWithOptions(srv.URL, srv.Client(), time.Hour)

	profile := c.GetProfile(context.Background())
	require.NotNil(t, profile)
	assert.Equal(t, "Acme Labs", profile.Name)
	assert.Equal(t, []string{"Robot Arm"}, profile.Products)

	// Second call inside the TTL is served from cache.
	c.GetProfile(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestGetProfileUsesStaleCacheOnFailure(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(profileJSON))
	}))
	defer srv.Close()

	// Zero TTL forces a refetch on every call.
	c := NewWithOptions(srv.URL, srv.Client(), 0)

	profile := c.GetProfile(context.Background())
	require.Equal(t, "Acme Labs", profile.Name)

	fail.Store(true)
	profile = c.GetProfile(context.Background())
	assert.Equal(t, "Acme Labs", profile.Name)
}

func TestGetProfileFallsBackWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWithOptions(srv.URL, srv.Client(), time.Hour)

	profile := c.GetProfile(context.Background())
	require.NotNil(t, profile)
	assert.Equal(t, "Kodin Softwares", profile.Name)
	assert.NotEmpty(t, profile.Products)
	assert.NotEmpty(t, profile.Services)

	// The fallback becomes the cache and is served while fresh.
	again := c.GetProfile(context.Background())
	assert.Same(t, profile, again)
}

func TestInvalidateDropsCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(profileJSON))
	}))
	defer srv.Close()

	c := NewWithOptions(srv.URL, srv.Client(), time.Hour)
	c.GetProfile(context.Background())
	c.Invalidate()
	c.GetProfile(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
