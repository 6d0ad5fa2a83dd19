package services

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/utils"
)

// DateBucket คือออเดอร์ที่จบแล้วของวันหนึ่ง (ใหม่สุดอยู่หน้า)
type DateBucket struct {
	Date   string         `json:"date"`
	Orders []entity.Order `json:"orders"`
}

type partition int

const (
	partNone partition = iota
	partActive
	partCompleted
	partCancelled
)

// ReconcilerService รวม snapshot จาก REST กับ delta จาก push channel
// ให้ได้สามมุมมองที่ไม่ทับกัน: active / completed รายวัน / cancelled รายวัน
//
// invariant: order id หนึ่งอยู่ได้แค่ partition เดียว และออเดอร์ที่จบแล้ว
// (Completed/Cancelled) ไม่ย้ายอีก
type ReconcilerService struct {
	log zerolog.Logger

	mu        sync.Mutex
	active    []entity.Order // เรียงตามลำดับมาถึง replace ตรงตำแหน่งเดิมกันจอกระโดด
	completed map[string][]entity.Order
	cancelled map[string][]entity.Order

	onChange func()
}

func NewReconcilerService(log zerolog.Logger) *ReconcilerService {
	return &ReconcilerService{
		log:       log,
		completed: make(map[string][]entity.Order),
		cancelled: make(map[string][]entity.Order),
	}
}

// SetOnChange ตั้ง callback หลัง state เปลี่ยน (เอาไว้สะกิด browser hub)
// เรียกนอก lock เสมอ
func (r *ReconcilerService) SetOnChange(fn func()) {
	r.onChange = fn
}

func (r *ReconcilerService) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Hydrate ทับ state ทั้งหมดด้วย snapshot จาก REST
// ใช้ตอนโหลดแรกและตอน refresh หลังมี orderModified/orderCancelled จากเครื่องอื่น
func (r *ReconcilerService) Hydrate(snapshot []entity.Order) {
	r.mu.Lock()
	r.active = nil
	r.completed = make(map[string][]entity.Order)
	r.cancelled = make(map[string][]entity.Order)
	for _, o := range snapshot {
		switch o.Status {
		case entity.StatusCompleted:
			key := utils.OrderDateKey(o.CreatedAt)
			r.completed[key] = append(r.completed[key], o)
		case entity.StatusCancelled:
			key := utils.OrderDateKey(o.CreatedAt)
			r.cancelled[key] = append(r.cancelled[key], o)
		default:
			r.active = append(r.active, o)
		}
	}
	r.mu.Unlock()
	r.notify()
}

// ApplyCreated ต่อท้าย active; id ซ้ำ = echo จาก at-least-once delivery ให้เฉย ๆ
func (r *ReconcilerService) ApplyCreated(o entity.Order) {
	r.mu.Lock()
	if r.locate(o.ID) != partNone {
		r.mu.Unlock()
		r.log.Debug().Str("order", o.ID).Msg("duplicate creation echo ignored")
		return
	}
	r.active = append(r.active, o)
	r.mu.Unlock()
	r.notify()
}

// ApplyUpdated route ตามสถานะใหม่ เหมือน Hydrate ของออเดอร์เดี่ยว
//   - จบแล้ว (Completed/Cancelled) -> ถอดจาก active แล้วแทรกหน้า bucket
//     ของวันที่สั่ง (key จาก createdAt)
//   - Pending/In Progress -> replace ตรงตำแหน่งเดิมใน active
//   - id ไม่รู้จัก -> แทรกเข้า partition ที่ถูกต้องเลย ไม่ถือเป็น error
//   - id อยู่ partition จบแล้ว -> ห้ามแตะ แค่ log ไว้ดู
func (r *ReconcilerService) ApplyUpdated(o entity.Order) {
	r.mu.Lock()

	switch r.locate(o.ID) {
	case partCompleted, partCancelled:
		r.mu.Unlock()
		r.log.Warn().Str("order", o.ID).Str("status", string(o.Status)).
			Msg("unexpected update for terminal order ignored")
		return

	case partActive:
		if o.Status.IsTerminal() {
			r.removeActive(o.ID)
			r.bucketFront(o)
		} else {
			for i := range r.active {
				if r.active[i].ID == o.ID {
					r.active[i] = o
					break
				}
			}
		}

	case partNone:
		if o.Status.IsTerminal() {
			r.bucketFront(o)
		} else {
			r.active = append(r.active, o)
		}
	}

	r.mu.Unlock()
	r.notify()
}

// Remove ถอดจาก active เท่านั้น (ลูกค้ากดยกเลิกเอง ลบทันทีให้จอไว)
// การไปโผล่ใน bucket cancelled รอ push/refresh จาก backend
// ยอมรับช่วง eventual consistency ตรงนี้
func (r *ReconcilerService) Remove(id string) {
	r.mu.Lock()
	removed := r.removeActive(id)
	r.mu.Unlock()
	if removed {
		r.notify()
	}
}

// Get คืนสำเนาออเดอร์จาก partition ไหนก็ได้
func (r *ReconcilerService) Get(id string) (entity.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.active {
		if o.ID == id {
			return o, true
		}
	}
	for _, bucket := range r.completed {
		for _, o := range bucket {
			if o.ID == id {
				return o, true
			}
		}
	}
	for _, bucket := range r.cancelled {
		for _, o := range bucket {
			if o.ID == id {
				return o, true
			}
		}
	}
	return entity.Order{}, false
}

func (r *ReconcilerService) Active() []entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Order, len(r.active))
	copy(out, r.active)
	return out
}

// CompletedBuckets เรียงวันใหม่สุดก่อน ในวันเดียวกันออเดอร์ที่เพิ่งจบอยู่หน้า
func (r *ReconcilerService) CompletedBuckets() []DateBucket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortBuckets(r.completed)
}

func (r *ReconcilerService) CancelledBuckets() []DateBucket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortBuckets(r.cancelled)
}

// TotalEarned รวมยอดจากราคาที่ snapshot ไว้ในออเดอร์
// เมนูโดนลบ/แก้ราคาไปแล้วก็ไม่กระทบตัวเลขย้อนหลัง
func (r *ReconcilerService) TotalEarned() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sumBuckets(r.completed)
}

func (r *ReconcilerService) TotalLost() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sumBuckets(r.cancelled)
}

// ----- helpers (เรียกใต้ lock เท่านั้น) -----

func (r *ReconcilerService) locate(id string) partition {
	for _, o := range r.active {
		if o.ID == id {
			return partActive
		}
	}
	for _, bucket := range r.completed {
		for _, o := range bucket {
			if o.ID == id {
				return partCompleted
			}
		}
	}
	for _, bucket := range r.cancelled {
		for _, o := range bucket {
			if o.ID == id {
				return partCancelled
			}
		}
	}
	return partNone
}

func (r *ReconcilerService) removeActive(id string) bool {
	for i := range r.active {
		if r.active[i].ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return true
		}
	}
	return false
}

func (r *ReconcilerService) bucketFront(o entity.Order) {
	key := utils.OrderDateKey(o.CreatedAt)
	switch o.Status {
	case entity.StatusCompleted:
		r.completed[key] = append([]entity.Order{o}, r.completed[key]...)
	case entity.StatusCancelled:
		r.cancelled[key] = append([]entity.Order{o}, r.cancelled[key]...)
	}
}

func sortBuckets(m map[string][]entity.Order) []DateBucket {
	out := make([]DateBucket, 0, len(m))
	for key, orders := range m {
		cp := make([]entity.Order, len(orders))
		copy(cp, orders)
		out = append(out, DateBucket{Date: key, Orders: cp})
	}
	sort.Slice(out, func(i, j int) bool {
		ti, _ := utils.ParseOrderDateKey(out[i].Date)
		tj, _ := utils.ParseOrderDateKey(out[j].Date)
		return ti.After(tj)
	})
	return out
}

func sumBuckets(m map[string][]entity.Order) int64 {
	var total int64
	for _, orders := range m {
		for _, o := range orders {
			total += o.ItemsTotal()
		}
	}
	return total
}
