package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func envelope200(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"error_code": 0,
		"message":    "success",
		"data":       data,
	})
	require.NoError(t, err)
}

func TestClientAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelope200(t, w, map[string]string{"id": "u1", "email": "dev@example.com"})
	}))
	defer srv.Close()

	c := New(srv.URL, "sk_abc_def")
	u, err := c.WhoAmI(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer sk_abc_def", gotAuth)
	require.Equal(t, "dev@example.com", u.Email)
}

func TestClientDecodesEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error_code": 404,
			"message":    "project not found",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	_, err := c.GetProject(context.Background(), "nope")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "project not found", apiErr.Message)
	require.True(t, IsNotFound(err))
	require.False(t, IsUnauthorized(err))
}

func TestClientPaths(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		envelope200(t, w, nil)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "t")
	ctx := context.Background()

	t.Run("Unset Variable", func(t *testing.T) {
		err := c.UnsetVariable(ctx, "p1", "SECRET_KEY")
		require.NoError(t, err)
		require.Equal(t, http.MethodDelete, gotMethod)
		require.Equal(t, "/api/v1/projects/p1/variables/SECRET_KEY", gotPath)
	})

	t.Run("Logs Query Params", func(t *testing.T) {
		_, err := c.Logs(ctx, "p1", "d9", 50)
		require.NoError(t, err)
		require.Equal(t, "/api/v1/projects/p1/logs", gotPath)
		require.Contains(t, gotQuery, "deployment=d9")
		require.Contains(t, gotQuery, "tail=50")
	})

	t.Run("Logs Defaults Omit Params", func(t *testing.T) {
		_, err := c.Logs(ctx, "p1", "", 0)
		require.NoError(t, err)
		require.Empty(t, gotQuery)
	})

	t.Run("Plugin Connection", func(t *testing.T) {
		_, err := c.PluginConnection(ctx, "p1", "redis")
		require.NoError(t, err)
		require.Equal(t, "/api/v1/projects/p1/plugins/redis/connection", gotPath)
	})
}

func TestClientSetVariables(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		envelope200(t, w, map[string]int{"updated": 2})
	}))
	defer srv.Close()

	c := New(srv.URL, "t")

	n, err := c.SetVariables(context.Background(), "p1", map[string]string{"A": "1", "B": "2"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	pairs, ok := gotBody["pairs"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "1", pairs["A"])

	_, err = c.SetVariablesDotenv(context.Background(), "p1", []byte("A=1\n"))
	require.NoError(t, err)
	require.Equal(t, "A=1\n", gotBody["dotenv"])
}

func TestClientUploadsArchiveRaw(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		envelope200(t, w, map[string]string{"id": "d1", "status": "queued"})
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	d, err := c.Up(context.Background(), "p1", strings.NewReader("tarball-bytes"))
	require.NoError(t, err)
	require.Equal(t, "queued", d.Status)
	require.Equal(t, "application/gzip", gotContentType)
	require.Equal(t, "tarball-bytes", string(gotBody))
}

func TestStreamURL(t *testing.T) {
	c := New("https://api.skylift.app", "t")
	u, err := c.streamURL("p1", "d2")
	require.NoError(t, err)
	require.Equal(t, "wss://api.skylift.app/api/v1/projects/p1/logs/stream?deployment=d2", u)

	c = New("http://localhost:8080", "t")
	u, err = c.streamURL("p1", "")
	require.NoError(t, err)
	require.Equal(t, "ws://localhost:8080/api/v1/projects/p1/logs/stream", u)
}
