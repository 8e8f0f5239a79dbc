package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendJSON_ReturnsTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/med", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ibuprofen", in["name"])

		_, _ = w.Write([]byte("Datos almacenados en Redis correctamente"))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)

	out, err := c.SendJSON(context.Background(), http.MethodPost, "med", map[string]string{"name": "ibuprofen"})
	require.NoError(t, err)
	assert.Equal(t, "Datos almacenados en Redis correctamente", out)
}

func TestGetJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "No se encontraron nombres en Redis", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)

	var names []string
	err = c.GetJSON(context.Background(), "/names", &names)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "No se encontraron nombres")
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("/names")
	assert.Error(t, err, "relative path without BaseURL")

	u, err := c.resolveURL("http://localhost:3000/names")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/names", u)

	_, err = NewWithBaseURL("::bad", time.Second)
	assert.Error(t, err)
}
