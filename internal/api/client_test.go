package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boutique-storefront/internal/models"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", time.Second, staticTokens("tok-123"), nil)
	if _, err := client.Products(context.Background(), nil); err != nil {
		t.Fatalf("Products failed: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", time.Second, staticTokens(""), nil)
	if _, err := client.Products(context.Background(), nil); err != nil {
		t.Fatalf("Products failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("expected no authorization header, got %q", gotAuth)
	}
}

func TestClient_UnauthorizedTriggersHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	hookCalled := false
	client := NewClient(server.URL+"/api", time.Second, nil, func() { hookCalled = true })

	_, err := client.Orders(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !hookCalled {
		t.Error("expected the unauthorized hook to run")
	}
}

func TestClient_APIErrorCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "Email already exists"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", time.Second, nil, nil)
	_, err := client.CreateAdminUser(context.Background(), models.AdminUserRequest{
		FullName: "X", Email: "x@y.tn",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Email already exists" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestClient_ProductsParsesWirePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("category") != "unisexe" {
			t.Errorf("expected category query, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"_id": "p1",
			"name": "T-shirt",
			"price": 39.9,
			"category": "unisexe",
			"colors": ["Noir", {"name": "Blanc"}],
			"sizes": ["M"],
			"images": [{"url": "/uploads/t.jpg"}]
		}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", time.Second, nil, nil)
	products, err := client.Products(context.Background(), map[string]string{"category": "unisexe"})
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != "p1" || p.Name != "T-shirt" {
		t.Errorf("unexpected product %+v", p)
	}
	if len(p.Colors) != 2 || p.Colors[1] != "Blanc" {
		t.Errorf("unexpected colors %v", p.Colors)
	}
	if p.Images[0] != server.URL+"/uploads/t.jpg" {
		t.Errorf("asset URL not resolved against origin: %s", p.Images[0])
	}
}

func TestClient_ProductsRejectsInvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "missing id", "price": 10}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", time.Second, nil, nil)
	if _, err := client.Products(context.Background(), nil); err == nil {
		t.Fatal("expected a parse error for a product without id")
	}
}

func TestClient_AssetsBase(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"http://localhost:8080/api", "http://localhost:8080"},
		{"http://localhost:8080/api/", "http://localhost:8080"},
		{"https://shop.example.com", "https://shop.example.com"},
	}
	for _, tt := range tests {
		client := NewClient(tt.baseURL, time.Second, nil, nil)
		if got := client.AssetsBase(); got != tt.want {
			t.Errorf("AssetsBase(%q) = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL+"/api", time.Minute, nil, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Products(ctx, nil); err == nil {
		t.Fatal("expected an error after context cancellation")
	}
}
