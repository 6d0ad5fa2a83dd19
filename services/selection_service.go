package services

import (
	"sync"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

// SelectionLine คือรายการที่ลูกค้ากำลังกดเลือก (ยังไม่ส่งออเดอร์)
type SelectionLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// selection ของโต๊ะหนึ่ง: เรียงตามลำดับที่กดเพิ่มครั้งแรก
// menuItemId ซ้ำไม่ได้ (กดซ้ำ = บวกจำนวน)
type selection struct {
	lines          []SelectionLine
	editingOrderID string // ไม่ว่าง = อยู่โหมดแก้ออเดอร์เดิม
}

// SelectionService เก็บ selection แยกตามโต๊ะ
// แยกขาดจาก catalog และจากออเดอร์ที่ส่งไปแล้ว
type SelectionService struct {
	catalog *CatalogService

	mu      sync.Mutex
	byTable map[string]*selection
}

func NewSelectionService(catalog *CatalogService) *SelectionService {
	return &SelectionService{catalog: catalog, byTable: make(map[string]*selection)}
}

// Adjust บวก/ลบจำนวนทีละหนึ่ง
// ไม่มีรายการ + delta=+1 -> เพิ่มที่ qty 1
// qty จะเหลือ 0 -> ลบรายการทิ้ง (ไม่เก็บศูนย์)
// ไม่มีรายการ + delta=-1 -> no-op
func (s *SelectionService) Adjust(table, menuItemID string, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrBadDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.byTable[table]
	if sel == nil {
		sel = &selection{}
		s.byTable[table] = sel
	}

	for i := range sel.lines {
		if sel.lines[i].MenuItemID != menuItemID {
			continue
		}
		sel.lines[i].Quantity += delta
		if sel.lines[i].Quantity <= 0 {
			sel.lines = append(sel.lines[:i], sel.lines[i+1:]...)
		}
		return nil
	}

	if delta == 1 {
		sel.lines = append(sel.lines, SelectionLine{MenuItemID: menuItemID, Quantity: 1})
	}
	return nil
}

func (s *SelectionService) Lines(table string) []SelectionLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.byTable[table]
	if sel == nil {
		return nil
	}
	out := make([]SelectionLine, len(sel.lines))
	copy(out, sel.lines)
	return out
}

// Total คิดยอดจากราคาใน catalog ปัจจุบัน
// รายการที่หาไม่เจอใน catalog นับเป็น 0 (ไม่ throw)
func (s *SelectionService) Total(table string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.byTable[table]
	if sel == nil {
		return 0
	}
	var total int64
	for _, ln := range sel.lines {
		if m, ok := s.catalog.Lookup(ln.MenuItemID); ok {
			total += m.Price * int64(ln.Quantity)
		}
	}
	return total
}

// LoadFrom ทับ selection ทั้งชุดด้วยรายการของออเดอร์เดิม (เข้าโหมดแก้)
func (s *SelectionService) LoadFrom(table string, o entity.Order) {
	lines := make([]SelectionLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, SelectionLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTable[table] = &selection{lines: lines, editingOrderID: o.ID}
}

// Editing คืน id ของออเดอร์ที่กำลังแก้ ถ้าอยู่โหมดแก้
func (s *SelectionService) Editing(table string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.byTable[table]
	if sel == nil || sel.editingOrderID == "" {
		return "", false
	}
	return sel.editingOrderID, true
}

// Clear ใช้หลัง submit สำเร็จ หรือกดยกเลิกการแก้
func (s *SelectionService) Clear(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byTable, table)
}

// Build ประกอบ payload สร้างออเดอร์ ราคา snapshot จาก catalog ณ ตอนนี้
// pure ต่อ state: ไม่ล้าง selection เอง ให้คนเรียกล้างหลัง backend ตอบ ok
func (s *SelectionService) Build(table string) (*entity.OrderRequest, error) {
	if table == "" {
		return nil, ErrNoTable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.byTable[table]
	if sel == nil || len(sel.lines) == 0 {
		return nil, ErrEmptySelection
	}

	items := make([]entity.OrderItem, 0, len(sel.lines))
	var total int64
	for _, ln := range sel.lines {
		it := entity.OrderItem{MenuItemID: ln.MenuItemID, Quantity: ln.Quantity}
		if m, ok := s.catalog.Lookup(ln.MenuItemID); ok {
			it.Name = m.Name
			it.UnitPrice = m.Price
		}
		total += it.LineTotal()
		items = append(items, it)
	}

	return &entity.OrderRequest{
		TableNumber: table,
		Items:       items,
		TotalAmount: total,
		Status:      entity.StatusNew,
	}, nil
}
