package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/utils"
)

func testOrder(id string, status entity.OrderStatus, createdAt time.Time) entity.Order {
	return entity.Order{
		ID:          id,
		TableNumber: "5",
		Items: []entity.OrderItem{
			{MenuItemID: "m1", Name: "Pad Thai", UnitPrice: 100, Quantity: 2},
		},
		TotalAmount: 200,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// ทุก id ต้องอยู่ partition เดียวเท่านั้น
func partitionCount(r *ReconcilerService, id string) int {
	n := 0
	for _, o := range r.Active() {
		if o.ID == id {
			n++
		}
	}
	for _, b := range r.CompletedBuckets() {
		for _, o := range b.Orders {
			if o.ID == id {
				n++
			}
		}
	}
	for _, b := range r.CancelledBuckets() {
		for _, o := range b.Orders {
			if o.ID == id {
				n++
			}
		}
	}
	return n
}

func TestHydratePartitions(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.Hydrate([]entity.Order{
		testOrder("a", entity.StatusPending, now),
		testOrder("b", entity.StatusInProgress, now),
		testOrder("c", entity.StatusCompleted, now),
		testOrder("d", entity.StatusCancelled, now),
	})

	if got := len(r.Active()); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}
	if got := len(r.CompletedBuckets()); got != 1 {
		t.Fatalf("completed buckets = %d, want 1", got)
	}
	if got := len(r.CancelledBuckets()); got != 1 {
		t.Fatalf("cancelled buckets = %d, want 1", got)
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		if n := partitionCount(r, id); n != 1 {
			t.Errorf("order %s present in %d partitions, want 1", id, n)
		}
	}
}

func TestHydrateReplacesPriorState(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.Hydrate([]entity.Order{testOrder("old", entity.StatusPending, now)})
	r.Hydrate([]entity.Order{testOrder("new", entity.StatusPending, now)})

	if n := partitionCount(r, "old"); n != 0 {
		t.Fatalf("stale order survived hydrate")
	}
	if n := partitionCount(r, "new"); n != 1 {
		t.Fatalf("new order missing after hydrate")
	}
}

func TestApplyCreatedIdempotent(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	o := testOrder("a", entity.StatusPending, time.Now())

	r.ApplyCreated(o)
	r.ApplyCreated(o) // at-least-once echo

	if got := len(r.Active()); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
}

func TestApplyUpdatedTerminalRouting(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()
	key := utils.OrderDateKey(now)

	r.ApplyCreated(testOrder("a", entity.StatusPending, now))
	r.ApplyCreated(testOrder("b", entity.StatusPending, now))

	done := testOrder("a", entity.StatusCompleted, now)
	r.ApplyUpdated(done)

	if n := partitionCount(r, "a"); n != 1 {
		t.Fatalf("order a present in %d partitions, want 1", n)
	}
	buckets := r.CompletedBuckets()
	if len(buckets) != 1 || buckets[0].Date != key {
		t.Fatalf("bucket key = %v, want %q", buckets, key)
	}
	if buckets[0].Orders[0].ID != "a" {
		t.Fatalf("completed bucket head = %s, want a", buckets[0].Orders[0].ID)
	}
	for _, o := range r.Active() {
		if o.ID == "a" {
			t.Fatal("completed order still in active")
		}
	}
}

func TestApplyUpdatedFrontInsertion(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.ApplyCreated(testOrder("first", entity.StatusPending, now))
	r.ApplyCreated(testOrder("second", entity.StatusPending, now))

	r.ApplyUpdated(testOrder("first", entity.StatusCompleted, now))
	r.ApplyUpdated(testOrder("second", entity.StatusCompleted, now))

	got := r.CompletedBuckets()[0].Orders
	if got[0].ID != "second" || got[1].ID != "first" {
		t.Fatalf("bucket order = [%s %s], want newest first", got[0].ID, got[1].ID)
	}
}

func TestApplyUpdatedInPlaceKeepsPosition(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.ApplyCreated(testOrder("a", entity.StatusPending, now))
	r.ApplyCreated(testOrder("b", entity.StatusPending, now))
	r.ApplyCreated(testOrder("c", entity.StatusPending, now))

	r.ApplyUpdated(testOrder("b", entity.StatusInProgress, now))

	active := r.Active()
	if active[1].ID != "b" {
		t.Fatalf("order b moved to position of %s", active[1].ID)
	}
	if active[1].Status != entity.StatusInProgress {
		t.Fatalf("status = %s, want In Progress", active[1].Status)
	}
}

func TestApplyUpdatedUnknownID(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	// ไม่เคย ApplyCreated มาก่อน ต้องเข้า partition ที่ถูกเหมือน hydrate เดี่ยว
	r.ApplyUpdated(testOrder("ghost-active", entity.StatusInProgress, now))
	r.ApplyUpdated(testOrder("ghost-done", entity.StatusCompleted, now))

	if n := partitionCount(r, "ghost-active"); n != 1 {
		t.Fatalf("unknown active order in %d partitions", n)
	}
	if len(r.Active()) != 1 || r.Active()[0].ID != "ghost-active" {
		t.Fatal("unknown non-terminal order not in active")
	}
	if r.CompletedBuckets()[0].Orders[0].ID != "ghost-done" {
		t.Fatal("unknown completed order not bucketed")
	}
}

func TestTerminalImmutability(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.ApplyUpdated(testOrder("a", entity.StatusCompleted, now))

	// update ซ้ำรวมถึงสลับสถานะต้องโดนเมิน
	r.ApplyUpdated(testOrder("a", entity.StatusCancelled, now))
	r.ApplyUpdated(testOrder("a", entity.StatusPending, now))

	if len(r.CancelledBuckets()) != 0 {
		t.Fatal("terminal order moved to cancelled")
	}
	if len(r.Active()) != 0 {
		t.Fatal("terminal order resurrected into active")
	}
	if n := partitionCount(r, "a"); n != 1 {
		t.Fatalf("order a in %d partitions, want 1", n)
	}
}

func TestRemoveOnlyTouchesActive(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	r.ApplyCreated(testOrder("a", entity.StatusPending, now))
	r.Remove("a")

	if len(r.Active()) != 0 {
		t.Fatal("order still active after remove")
	}
	// remove ไม่สังเคราะห์ cancelled เอง รอ push ของจริง
	if len(r.CancelledBuckets()) != 0 {
		t.Fatal("remove must not synthesize a cancelled order")
	}

	// bucket placement มาจาก push ทีหลัง
	r.ApplyUpdated(testOrder("a", entity.StatusCancelled, now))
	if r.CancelledBuckets()[0].Orders[0].ID != "a" {
		t.Fatal("authoritative cancellation not bucketed")
	}
}

func TestBucketsSortedMostRecentDateFirst(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	r.ApplyUpdated(testOrder("old", entity.StatusCompleted, yesterday))
	r.ApplyUpdated(testOrder("new", entity.StatusCompleted, today))

	buckets := r.CompletedBuckets()
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	if buckets[0].Date != utils.OrderDateKey(today) {
		t.Fatalf("first bucket = %s, want today", buckets[0].Date)
	}
}

func TestBucketKeyComesFromCreatedAt(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	yesterday := time.Now().AddDate(0, 0, -1)

	// สั่งเมื่อวาน เพิ่งเสร็จวันนี้ ต้องลง bucket ของเมื่อวาน
	r.ApplyCreated(testOrder("a", entity.StatusPending, yesterday))
	r.ApplyUpdated(testOrder("a", entity.StatusCompleted, yesterday))

	buckets := r.CompletedBuckets()
	if buckets[0].Date != utils.OrderDateKey(yesterday) {
		t.Fatalf("bucket = %s, want yesterday's date key", buckets[0].Date)
	}
}

func TestTotalsUseCapturedPrices(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	now := time.Now()

	earned := testOrder("a", entity.StatusCompleted, now) // 100 x 2
	lost := entity.Order{
		ID:          "b",
		TableNumber: "3",
		Items: []entity.OrderItem{
			// เมนูนี้ไม่มีใน catalog แล้วก็ต้องยังคิดจากราคาที่ snapshot ไว้
			{MenuItemID: "deleted-item", Name: "Old Special", UnitPrice: 50, Quantity: 3},
		},
		TotalAmount: 150,
		Status:      entity.StatusCancelled,
		CreatedAt:   now,
	}

	r.ApplyUpdated(earned)
	r.ApplyUpdated(lost)

	if got := r.TotalEarned(); got != 200 {
		t.Fatalf("TotalEarned = %d, want 200", got)
	}
	if got := r.TotalLost(); got != 150 {
		t.Fatalf("TotalLost = %d, want 150", got)
	}
}

func TestOnChangeFires(t *testing.T) {
	r := NewReconcilerService(zerolog.Nop())
	fired := 0
	r.SetOnChange(func() { fired++ })

	now := time.Now()
	r.ApplyCreated(testOrder("a", entity.StatusPending, now))
	r.ApplyUpdated(testOrder("a", entity.StatusCompleted, now))
	r.Remove("missing") // no-op ห้ามยิง callback

	if fired != 2 {
		t.Fatalf("onChange fired %d times, want 2", fired)
	}
}
