package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sushihentaime/bloglist/internal/blogservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestConfig() *Config {
	cfg := &Config{
		Port:        "4000",
		Environment: "testing",
		Version:     "1.0.0",
	}
	cfg.DB.Driver = DriverMongo
	cfg.Limiter.Enabled = false
	cfg.Limiter.RPS = 2
	cfg.Limiter.Burst = 4

	return cfg
}

func newTestApplication(t *testing.T, store blogservice.Store) *application {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return newApplication(newTestConfig(), logger, store)
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, []byte) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

// do sends payload as JSON unless it is nil, in which case the request has no body.
func (ts *testServer) do(t *testing.T, method, path string, payload any) (int, http.Header, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodGet, path, nil)
}

func (ts *testServer) post(t *testing.T, path string, payload any) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPost, path, payload)
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPut, path, payload)
}

func (ts *testServer) delete(t *testing.T, path string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodDelete, path, nil)
}

func decodeBlogs(t *testing.T, body []byte) []blogservice.Blog {
	t.Helper()

	var blogs []blogservice.Blog
	if err := json.Unmarshal(body, &blogs); err != nil {
		t.Fatalf("could not decode blogs: %v (body %q)", err, body)
	}

	return blogs
}

func decodeBlog(t *testing.T, body []byte) blogservice.Blog {
	t.Helper()

	var blog blogservice.Blog
	if err := json.Unmarshal(body, &blog); err != nil {
		t.Fatalf("could not decode blog: %v (body %q)", err, body)
	}

	return blog
}

func initialBlogs() []blogservice.Blog {
	return []blogservice.Blog{
		{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
		{Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
		{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
		{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
	}
}
