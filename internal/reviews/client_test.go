package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	body := []byte(`[
		{"sku":"A","rating":4.8,"numReviews":55},
		{"baseSku":"B","rating":"4.2","numReviews":"12"},
		{"sku":7,"rating":1,"numReviews":1},
		{"sku":"C","rating":null},
		"junk"
	]`)
	entries, ok := Decode(body)
	require.True(t, ok)
	require.Len(t, entries, 4)

	require.Equal(t, "A", entries[0].SKU)
	require.Equal(t, "4.8", entries[0].Rating)
	require.Equal(t, "55", entries[0].NumReviews)
	require.True(t, entries[0].HasRating)

	require.Equal(t, "B", entries[1].BaseSKU)
	require.Equal(t, "4.2", entries[1].Rating)

	require.Empty(t, entries[2].SKU, "numeric sku is not a match key")

	require.True(t, entries[3].HasRating)
	require.False(t, entries[3].HasNumReviews)
}

func TestDecodeRejectsNonArrays(t *testing.T) {
	for _, body := range []string{`{"sku":"A"}`, `not json`, ``, `"str"`, `null`} {
		entries, ok := Decode([]byte(body))
		require.False(t, ok, "body %q", body)
		require.Nil(t, entries)
	}
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"sku":"A","rating":4.8,"numReviews":55}]`))
	}))
	defer srv.Close()

	entries := NewClient(srv.URL, 0).Fetch(context.Background())
	require.Len(t, entries, 1)
	require.Equal(t, "A", entries[0].SKU)
}

func TestClientFetchFailuresReturnNil(t *testing.T) {
	html := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer html.Close()
	require.Nil(t, NewClient(html.URL, 0).Fetch(context.Background()))

	object := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer object.Close()
	require.Nil(t, NewClient(object.URL, 0).Fetch(context.Background()))

	down := httptest.NewServer(http.NotFoundHandler())
	url := down.URL
	down.Close()
	require.Nil(t, NewClient(url, 0).Fetch(context.Background()))

	require.Nil(t, NewClient("://bad", 0).Fetch(context.Background()))
}

func TestClientFetchIgnoresArrayOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`[{"sku":"A","rating":"1.0","numReviews":"1"}]`))
	}))
	defer srv.Close()
	require.Nil(t, NewClient(srv.URL, 0).Fetch(context.Background()))
}

func TestClientFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Nil(t, NewClient(srv.URL, 0).Fetch(ctx))
}
