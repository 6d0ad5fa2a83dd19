package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

// Hub กระจาย state change ให้ browser ที่เปิดหน้าเมนู/แดชบอร์ดค้างไว้
// ขาเข้าไม่รับอะไรจาก browser นอกจาก close
type Hub struct {
	log zerolog.Logger

	clients    map[*websocket.Conn]string // conn -> client id
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan entity.PushEnvelope
	quit       chan struct{}
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*websocket.Conn]string),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan entity.PushEnvelope, 16),
		quit:       make(chan struct{}),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			id := uuid.NewString()
			h.clients[conn] = id
			h.log.Info().Str("client", id).Int("clients", len(h.clients)).Msg("browser connected")

		case conn := <-h.unregister:
			if id, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.log.Info().Str("client", id).Msg("browser disconnected")
			}

		case env := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(env); err != nil {
					h.log.Warn().Err(err).Msg("ws write error, dropping client")
					conn.Close()
					delete(h.clients, conn)
				}
			}

		case <-h.quit:
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = make(map[*websocket.Conn]string)
			return
		}
	}
}

// BroadcastState สะกิดให้หน้าเว็บดึงข้อมูลใหม่ (frame ไม่แบก payload)
func (h *Hub) BroadcastState() {
	h.push(entity.PushEnvelope{Event: entity.EventStateChanged})
}

// BroadcastJSON ส่ง event พร้อม payload เช่น toast ปัจจุบัน
func (h *Hub) BroadcastJSON(event string, data []byte) {
	h.push(entity.PushEnvelope{Event: event, Data: data})
}

func (h *Hub) push(env entity.PushEnvelope) {
	select {
	case h.broadcast <- env:
	case <-h.quit:
	}
}

func (h *Hub) Close() {
	close(h.quit)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain ทิ้งทุกอย่างที่ browser ส่งมา แค่รอ close
func (h *Hub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
