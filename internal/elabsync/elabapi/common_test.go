package elabapi

import (
	"net/http"
	"net/http/httptest"
)

// mockServer creates a test HTTP server that simulates the eLabFTW API.
// This is shared across all test files in the elabapi package.
func mockServer(handlers map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	return httptest.NewServer(mux)
}

// testClient builds a client against the mock server with a fixed key
func testClient(url string) *Client {
	api, err := Init(url, "test-api-key")
	if err != nil {
		panic(err)
	}
	return api
}
