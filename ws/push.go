package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

// PushClient คือ subscription ยาว ๆ ไป push channel ของ backend
// เปิดตอน start ปิดตอน shutdown; หลุดแล้วไม่ reconnect เอง
// (restart process = เปิดใหม่)
type PushClient struct {
	url     string
	log     zerolog.Logger
	handler func(entity.PushEnvelope)

	mu     sync.Mutex // กันเขียนชนกันบน conn เดียว
	conn   *websocket.Conn
	closed bool
}

func NewPushClient(url string, log zerolog.Logger) *PushClient {
	return &PushClient{url: url, log: log}
}

// SetHandler ต้องตั้งก่อน Connect
// handler ถูกเรียกทีละ event ตามลำดับที่ backend ส่ง ไม่มีซ้อนกัน
func (p *PushClient) SetHandler(fn func(entity.PushEnvelope)) {
	p.handler = fn
}

func (p *PushClient) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, p.url, nil)
	if err != nil {
		return fmt.Errorf("dial push channel: %w", err)
	}

	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()

	p.log.Info().Str("url", p.url).Msg("push channel connected")
	go p.readLoop(conn)
	return nil
}

// readLoop: อ่าน -> decode -> handler จนจบ แล้วค่อยอ่านตัวถัดไป
// ลำดับ event ต่อ order เดียวกันเลยตรงกับที่ backend ยิงเสมอ
func (p *PushClient) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			p.mu.Lock()
			closed := p.closed
			p.mu.Unlock()
			if !closed {
				p.log.Error().Err(err).Msg("push channel read failed, subscription dead until restart")
			}
			return
		}

		var env entity.PushEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			p.log.Warn().Err(err).Msg("bad push frame skipped")
			continue
		}
		if p.handler != nil {
			p.handler(env)
		}
	}
}

// Emit ส่ง event ฝั่งเรา (updateOrderStatus, orderModified, orderCancelled)
func (p *PushClient) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.closed {
		return fmt.Errorf("push channel not connected")
	}
	if err := p.conn.WriteJSON(entity.PushEnvelope{Event: event, Data: data}); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	return nil
}

func (p *PushClient) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.closed {
		return nil
	}
	p.closed = true
	return p.conn.Close()
}
