package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

func TestFetchOrdersQueryEncoding(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]entity.Order{})
	}))
	defer srv.Close()

	repo := NewOrderRepository(NewClient(srv.URL, time.Second))

	if _, err := repo.FetchOrders(context.Background(), "5"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/orders" || gotQuery != "tableNumber=5" {
		t.Fatalf("request = %s?%s", gotPath, gotQuery)
	}

	if _, err := repo.FetchOrders(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "" {
		t.Fatalf("empty table must not send a query, got %q", gotQuery)
	}
}

func TestCreateOrderRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s", ct)
		}
		var req entity.OrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entity.Order{
			ID:          "ord-1",
			TableNumber: req.TableNumber,
			Items:       req.Items,
			TotalAmount: req.TotalAmount,
			Status:      entity.StatusPending,
			CreatedAt:   time.Now(),
		})
	}))
	defer srv.Close()

	repo := NewOrderRepository(NewClient(srv.URL, time.Second))
	created, err := repo.CreateOrder(context.Background(), entity.OrderRequest{
		TableNumber: "5",
		Items:       []entity.OrderItem{{MenuItemID: "m1", Name: "Pad Thai", UnitPrice: 100, Quantity: 2}},
		TotalAmount: 200,
		Status:      entity.StatusNew,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "ord-1" || created.Status != entity.StatusPending || created.TotalAmount != 200 {
		t.Fatalf("created = %+v", created)
	}
}

func TestNon2xxSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"order already completed"}`))
	}))
	defer srv.Close()

	repo := NewOrderRepository(NewClient(srv.URL, time.Second))
	err := repo.DeleteOrder(context.Background(), "ord-1")
	if err == nil {
		t.Fatal("want error on 409")
	}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "order already completed") {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateOrderEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(entity.Order{ID: "a/b"})
	}))
	defer srv.Close()

	repo := NewOrderRepository(NewClient(srv.URL, time.Second))
	if _, err := repo.UpdateOrder(context.Background(), "a/b", entity.OrderRequest{}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/orders/a%2Fb" {
		t.Fatalf("path = %s", gotPath)
	}
}

func TestDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	repo := NewMenuRepository(NewClient(srv.URL, time.Second))
	if _, err := repo.FetchMenu(context.Background()); err == nil {
		t.Fatal("want decode error")
	}
}
