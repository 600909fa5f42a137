package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientGetJSON(t *testing.T) {
	var gotToken string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Figma-Token")
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"hello":"world"}`))
		case "/denied":
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"status":403,"err":"Invalid token"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not json"))
		}
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret", time.Second, nil)

	resp, err := client.GetJSON(context.Background(), "/ok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !resp.OK || resp.Status != http.StatusOK {
		t.Fatalf("expected 200 OK, got ok=%v status=%d", resp.OK, resp.Status)
	}
	if gotToken != "secret" {
		t.Fatalf("expected auth header, got %q", gotToken)
	}
	var body struct {
		Hello string `json:"hello"`
	}
	if err := resp.Decode(&body); err != nil || body.Hello != "world" {
		t.Fatalf("decode body: %v (%+v)", err, body)
	}

	// non-2xx is reported, not returned as an error
	resp, err = client.GetJSON(context.Background(), "/denied")
	if err != nil {
		t.Fatalf("get denied: %v", err)
	}
	if resp.OK || resp.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got ok=%v status=%d", resp.OK, resp.Status)
	}
	if !strings.Contains(string(resp.Body), "Invalid token") {
		t.Fatalf("expected upstream body preserved, got %s", resp.Body)
	}

	// non-JSON bodies are kept raw
	resp, err = client.GetJSON(context.Background(), "/other")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if string(resp.Body) != "not json" {
		t.Fatalf("expected raw body, got %s", resp.Body)
	}
}

func TestClientTransportError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	client := NewClient(upstream.URL, "secret", time.Second, nil)
	if _, err := client.GetJSON(context.Background(), "/anything"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestClientImagesQuery(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"images":{}}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret", time.Second, nil)
	if _, err := client.Images(context.Background(), "KEY", []string{"1:1", "1:2"}, "png", 2); err != nil {
		t.Fatalf("images: %v", err)
	}
	for _, want := range []string{"ids=1%3A1%2C1%3A2", "format=png", "scale=2"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}
