package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification คือ toast ที่แดชบอร์ดเห็นอยู่ตอนนี้ (มีได้ทีละอันเดียว)
type Notification struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	At       time.Time `json:"at"`
}

// NotifyService: last write wins ไม่มีคิว
// Notify ใหม่ก่อนหมดเวลา = ทับข้อความเดิมแล้วนับ 5 วิใหม่
type NotifyService struct {
	ttl      time.Duration
	onChange func()

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
}

func NewNotifyService(ttl time.Duration) *NotifyService {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &NotifyService{ttl: ttl}
}

func (s *NotifyService) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *NotifyService) Notify(message, severity string) {
	switch severity {
	case SeverityInfo, SeverityWarning, SeverityError:
	default:
		severity = SeverityInfo
	}

	n := &Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		At:       time.Now(),
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = n
	id := n.ID
	s.timer = time.AfterFunc(s.ttl, func() { s.clear(id) })
	s.mu.Unlock()

	s.fire()
}

// clear ลบเฉพาะเมื่อยังเป็นอันเดิม กัน timer เก่ามาลบข้อความใหม่
func (s *NotifyService) clear(id string) {
	s.mu.Lock()
	if s.current == nil || s.current.ID != id {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.mu.Unlock()

	s.fire()
}

// Current คืนสำเนา toast ที่ยังแสดงอยู่ หรือ nil ถ้าหมดเวลาแล้ว
func (s *NotifyService) Current() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *NotifyService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = nil
}

func (s *NotifyService) fire() {
	if s.onChange != nil {
		s.onChange()
	}
}
