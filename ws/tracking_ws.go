package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHub fans each tracking update out to the watchers of that
// order. Watchers only read; courier pings come in over plain HTTP.
type TrackingHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> watchers
	broadcast  chan trackingEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	delivery   *services.DeliveryService
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type trackingEvent struct {
	OrderID uint
	Payload any
}

func NewTrackingHub() *TrackingHub {
	return &TrackingHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan trackingEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// SetDeliveryService breaks the construction cycle: the hub is the
// service's notifier, and the service authorizes watchers for the hub.
func (h *TrackingHub) SetDeliveryService(d *services.DeliveryService) { h.delivery = d }

func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastTracking implements services.TrackingNotifier.
func (h *TrackingHub) BroadcastTracking(orderID uint, payload any) {
	h.broadcast <- trackingEvent{OrderID: orderID, Payload: payload}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id/track
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	orderID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	orderID := uint(orderID64)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// Track doubles as the access check and the initial frame
	view, err := h.delivery.Track(userID, role, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	if err := conn.WriteJSON(view); err != nil {
		h.unregister <- sub
		return
	}

	go h.drain(sub)
}

// drain keeps the read side alive so close frames are processed.
func (h *TrackingHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
