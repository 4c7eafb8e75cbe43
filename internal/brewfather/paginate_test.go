package brewfather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewfather-mcp/internal/model"
)

func TestPaginate_ReturnsAllRecordsInOrder(t *testing.T) {
	testCases := []struct {
		name             string
		total            int
		limit            int
		expectedRequests int
		expectedLimit    string
	}{
		{name: "empty collection", total: 0, limit: 5, expectedRequests: 1, expectedLimit: "5"},
		{name: "short final page", total: 7, limit: 5, expectedRequests: 2, expectedLimit: "5"},
		{name: "exact multiple ends on empty page", total: 10, limit: 5, expectedRequests: 3, expectedLimit: "5"},
		{name: "default page size", total: 3, limit: 0, expectedRequests: 1, expectedLimit: "50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeInventory{total: tc.total}
			server := httptest.NewServer(fake.router())
			defer server.Close()

			c, hook := newTestClient(t, server.URL)
			items, err := c.ListFermentables(context.Background(), &ListQueryParams{Limit: tc.limit})
			require.NoError(t, err)

			require.Len(t, items, tc.total)
			for i, item := range items {
				assert.Equal(t, fmt.Sprintf("f-%03d", i+1), item.ID)
			}
			require.Len(t, fake.requests, tc.expectedRequests)
			assert.Equal(t, tc.expectedLimit, fake.requests[0].URL.Query().Get("limit"))
			assert.Empty(t, fake.requests[0].URL.Query().Get("start_after"))

			for _, e := range hook.AllEntries() {
				assert.NotEqual(t, logrus.WarnLevel, e.Level)
			}
		})
	}
}

func TestPaginate_CursorIsLastID(t *testing.T) {
	fake := &fakeInventory{total: 12}
	server := httptest.NewServer(fake.router())
	defer server.Close()

	c, _ := newTestClient(t, server.URL)
	_, err := c.ListFermentables(context.Background(), &ListQueryParams{Limit: 5, InventoryExists: Bool(true)})
	require.NoError(t, err)

	require.Len(t, fake.requests, 3)
	assert.Equal(t, "f-005", fake.requests[1].URL.Query().Get("start_after"))
	assert.Equal(t, "f-010", fake.requests[2].URL.Query().Get("start_after"))
	for _, r := range fake.requests {
		assert.Equal(t, "true", r.URL.Query().Get("inventory_exists"))
	}
}

func TestPaginate_StopsAtPageLimit(t *testing.T) {
	fake := &fakeInventory{total: 1000}
	server := httptest.NewServer(fake.router())
	defer server.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	c, hook := newTestClient(t, server.URL, WithMetrics(metrics))

	items, err := c.ListFermentables(context.Background(), &ListQueryParams{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, items, MaxPages*5)
	assert.Len(t, fake.requests, MaxPages)

	var warning *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warning = e
		}
	}
	require.NotNil(t, warning)
	assert.Equal(t, "inventory/fermentables", warning.Data["endpoint"])
	assert.Equal(t, MaxPages*5, warning.Data["total"])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.truncated.WithLabelValues("inventory/fermentables")))
	assert.Equal(t, float64(MaxPages), testutil.ToFloat64(metrics.pages.WithLabelValues("inventory/fermentables")))
}

func TestPaginate_DecodeFailureReturnsNothing(t *testing.T) {
	fake := &fakeInventory{total: 20}
	server := httptest.NewServer(fake.router())
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	calls := 0
	decode := func(body []byte) ([]model.Fermentable, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("boom")
		}
		return DecodeList[model.Fermentable](body)
	}

	items, err := Paginate(context.Background(), c, Fermentables.Endpoint(), decode, &ListQueryParams{Limit: 5})
	assert.Nil(t, items)

	var dErr *DecodeError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, "inventory/fermentables", dErr.Endpoint)
	assert.EqualError(t, dErr.Err, "boom")
}

func TestPaginate_RecordWithoutIDFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"a","name":"A"},{"name":"B"}]`))
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)
	items, err := c.ListHops(context.Background(), nil)
	assert.Nil(t, items)

	var dErr *DecodeError
	assert.True(t, errors.As(err, &dErr))
}

func TestPaginate_TransportFailureMidWalk(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 2 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"_id":"a","name":"A"},{"_id":"b","name":"B"}]`))
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)
	items, err := c.ListBatches(context.Background(), &ListQueryParams{Limit: 2})
	assert.Nil(t, items)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, http.StatusServiceUnavailable, tErr.StatusCode)
	assert.Equal(t, 2, requests)
}

func TestPaginate_DoesNotMutateParams(t *testing.T) {
	fake := &fakeInventory{total: 8}
	server := httptest.NewServer(fake.router())
	defer server.Close()

	c, _ := newTestClient(t, server.URL)
	params := &ListQueryParams{OrderBy: "name"}
	_, err := c.ListFermentables(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, &ListQueryParams{OrderBy: "name"}, params)
}
