package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t *testing.T
}

func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	return &TestServer{
		Server: server,
		t:      t,
	}
}

func (ts *TestServer) GET(path string) *http.Response {
	return ts.do(http.MethodGet, path, nil)
}

func (ts *TestServer) POST(path string, body interface{}) *http.Response {
	return ts.do(http.MethodPost, path, body)
}

func (ts *TestServer) PUT(path string, body interface{}) *http.Response {
	return ts.do(http.MethodPut, path, body)
}

func (ts *TestServer) DELETE(path string) *http.Response {
	return ts.do(http.MethodDelete, path, nil)
}

func (ts *TestServer) do(method, path string, body interface{}) *http.Response {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(ts.t, err)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, bodyReader)
	require.NoError(ts.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(ts.t, err)
	return resp
}

// AssertJSONResponse checks status and content type, then decodes the body
// into target. It consumes and closes the response body.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, target interface{}) {
	t.Helper()
	defer resp.Body.Close()

	require.Equal(t, expectedStatus, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"),
		"unexpected content type %q", resp.Header.Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}
}

// AssertErrorResponse checks status and the {"error": message} body shape.
// It consumes and closes the response body.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()
	defer resp.Body.Close()

	require.Equal(t, expectedStatus, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Error)

	if expectedMessage != "" {
		require.Contains(t, body.Error, expectedMessage)
	}
}
