package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/repository"
)

func TestCatalogLoadAndLookup(t *testing.T) {
	cat := testCatalog(t, menuFixture())

	it, ok := cat.Lookup("m2")
	if !ok || it.Price != 250 {
		t.Fatalf("lookup m2 = %+v %v", it, ok)
	}
	if _, ok := cat.Lookup("nope"); ok {
		t.Fatal("lookup found a ghost item")
	}
	if got := len(cat.Items()); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}
}

// โหลดพังต้องเหลือชุดเก่าไว้ครบ ไม่ใช่ catalog ครึ่ง ๆ กลาง ๆ
func TestCatalogFailureKeepsStale(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(menuFixture())
	}))
	defer srv.Close()

	repo := repository.NewMenuRepository(repository.NewClient(srv.URL, time.Second))
	cat := NewCatalogService(repo, zerolog.Nop())
	if err := cat.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	fail.Store(true)
	err := cat.Load(context.Background())
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("err = %v, want ErrCatalogUnavailable", err)
	}

	if got := len(cat.Items()); got != 2 {
		t.Fatalf("stale catalog = %d items, want 2", got)
	}
	if _, ok := cat.Lookup("m1"); !ok {
		t.Fatal("stale lookup broken after failed refresh")
	}
}
