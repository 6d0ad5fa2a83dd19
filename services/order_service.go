package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/repository"
)

// PushEmitter คือขา emit ของ push channel (ws.PushClient ของจริง, fake ในเทสต์)
type PushEmitter interface {
	Emit(event string, payload any) error
}

// OrderService เป็นตัวกลาง: controller/push channel เข้าทางนี้
// แล้วค่อยกระจายไป repository + reconciler + selection + notifier
type OrderService struct {
	repo       *repository.OrderRepository
	selection  *SelectionService
	reconciler *ReconcilerService
	notifier   *NotifyService
	emitter    PushEmitter
	log        zerolog.Logger
}

func NewOrderService(
	repo *repository.OrderRepository,
	selection *SelectionService,
	reconciler *ReconcilerService,
	notifier *NotifyService,
	emitter PushEmitter,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		repo:       repo,
		selection:  selection,
		reconciler: reconciler,
		notifier:   notifier,
		emitter:    emitter,
		log:        log,
	}
}

// Refresh ดึง snapshot ทั้งชุดแล้ว Hydrate ทับ
func (s *OrderService) Refresh(ctx context.Context) error {
	snapshot, err := s.repo.FetchOrders(ctx, "")
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}
	s.reconciler.Hydrate(snapshot)
	return nil
}

// ListForTable ส่งต่อให้หน้า customer (ออเดอร์ของโต๊ะตัวเอง)
func (s *OrderService) ListForTable(ctx context.Context, table string) ([]entity.Order, error) {
	if table == "" {
		return nil, ErrNoTable
	}
	return s.repo.FetchOrders(ctx, table)
}

// Submit สร้างออเดอร์จาก selection ของโต๊ะ
// backend ตอบ ok แล้วค่อยล้าง selection + absorb เข้า reconciler
// (push echo newOrder ที่ตามมาเป็น no-op เพราะ ApplyCreated idempotent)
func (s *OrderService) Submit(ctx context.Context, table string) (*entity.Order, error) {
	req, err := s.selection.Build(table)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateOrder(ctx, *req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderMutationFailed, err)
	}

	s.reconciler.ApplyCreated(*created)
	s.selection.Clear(table)
	return created, nil
}

// Modify ส่งรายการใหม่ทับออเดอร์ที่กำลังแก้ (ต้องเข้าโหมดแก้ก่อนด้วย LoadFrom)
func (s *OrderService) Modify(ctx context.Context, table string) (*entity.Order, error) {
	orderID, ok := s.selection.Editing(table)
	if !ok {
		return nil, ErrNotEditing
	}

	req, err := s.selection.Build(table)
	if err != nil {
		return nil, err
	}
	req.Status = entity.StatusModified

	updated, err := s.repo.UpdateOrder(ctx, orderID, *req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderMutationFailed, err)
	}

	s.reconciler.ApplyUpdated(*updated)
	s.selection.Clear(table)

	// บอกเครื่องอื่น (แดชบอร์ด) ว่าออเดอร์นี้โดนแก้
	if err := s.emitter.Emit(entity.EventOrderModified, entity.OrderRef{OrderID: orderID, TableNumber: table}); err != nil {
		s.log.Warn().Err(err).Str("order", orderID).Msg("emit orderModified failed")
	}
	return updated, nil
}

// StartModify โหลดรายการของออเดอร์เดิมเข้า selection ของโต๊ะ
func (s *OrderService) StartModify(table, orderID string) error {
	o, ok := s.reconciler.Get(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if o.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	s.selection.LoadFrom(table, o)
	return nil
}

// Cancel ยกเลิกก่อนออเดอร์จบ: DELETE แล้วถอดจาก active ทันที (optimistic)
// ทุกเครื่องรวมถึงเครื่องนี้จะ converge ลง bucket cancelled
// ตอน push/refresh ที่ตามมา
func (s *OrderService) Cancel(ctx context.Context, orderID, table string) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("%w: %s", ErrOrderMutationFailed, err)
	}

	s.reconciler.Remove(orderID)
	if editing, ok := s.selection.Editing(table); ok && editing == orderID {
		s.selection.Clear(table)
	}

	if err := s.emitter.Emit(entity.EventOrderCancelled, entity.OrderRef{OrderID: orderID, TableNumber: table}); err != nil {
		s.log.Warn().Err(err).Str("order", orderID).Msg("emit orderCancelled failed")
	}
	return nil
}

// UpdateStatus ขาแอดมิน: guard transition แล้ว emit ขึ้น push channel
// ของจริงจะย้อนกลับมาเป็น orderUpdated จาก backend
func (s *OrderService) UpdateStatus(orderID string, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidTransition
	}
	o, ok := s.reconciler.Get(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !entity.CanTransition(o.Status, status) {
		return ErrInvalidTransition
	}

	if err := s.emitter.Emit(entity.EventUpdateOrderStatus, entity.StatusChange{OrderID: orderID, Status: status}); err != nil {
		return fmt.Errorf("%w: %s", ErrOrderMutationFailed, err)
	}
	return nil
}

// HandlePush คือ dispatch table ของ push channel
// PushClient เรียกทีละ event ตามลำดับที่มาถึง ไม่มี handler ซ้อนกัน
func (s *OrderService) HandlePush(ev entity.PushEnvelope) {
	switch ev.Event {
	case entity.EventNewOrder:
		var o entity.Order
		if err := json.Unmarshal(ev.Data, &o); err != nil {
			s.log.Error().Err(err).Msg("bad newOrder payload")
			return
		}
		s.reconciler.ApplyCreated(o)

	case entity.EventOrderUpdated:
		var o entity.Order
		if err := json.Unmarshal(ev.Data, &o); err != nil {
			s.log.Error().Err(err).Msg("bad orderUpdated payload")
			return
		}
		s.reconciler.ApplyUpdated(o)

	case entity.EventOrderModified:
		var ref entity.OrderRef
		if err := json.Unmarshal(ev.Data, &ref); err != nil {
			s.log.Error().Err(err).Msg("bad orderModified payload")
			return
		}
		s.notifier.Notify(
			fmt.Sprintf("Order #%s has been modified by Table %s", shortID(ref.OrderID), ref.TableNumber),
			SeverityWarning,
		)
		s.refreshAfterPush(ref.OrderID)

	case entity.EventOrderCancelled:
		var ref entity.OrderRef
		if err := json.Unmarshal(ev.Data, &ref); err != nil {
			s.log.Error().Err(err).Msg("bad orderCancelled payload")
			return
		}
		s.notifier.Notify(
			fmt.Sprintf("Order #%s from Table %s has been cancelled", shortID(ref.OrderID), ref.TableNumber),
			SeverityError,
		)
		s.refreshAfterPush(ref.OrderID)

	default:
		s.log.Debug().Str("event", ev.Event).Msg("unhandled push event")
	}
}

// refreshAfterPush: best-effort ถ้า backend ล่มตอนนี้ state เดิมยังอยู่ครบ
func (s *OrderService) refreshAfterPush(orderID string) {
	if err := s.Refresh(context.Background()); err != nil {
		s.log.Warn().Err(err).Str("order", orderID).Msg("refresh after push failed")
	}
}

// shortID ตัดเหลือ 4 ตัวท้ายแบบที่หน้าเว็บแสดง
func shortID(id string) string {
	if len(id) > 4 {
		return id[len(id)-4:]
	}
	return id
}
