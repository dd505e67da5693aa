package cartControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[uint]map[*websocket.Conn]bool)
)

// GET /user/cart/ws
// Streams the cart view to the owning user after every mutation so the
// storefront badge stays current without polling.
func CartWebSocketHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	if wsClients[userID] == nil {
		wsClients[userID] = make(map[*websocket.Conn]bool)
	}
	wsClients[userID][conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients[userID], conn)
			wsMu.Unlock()
			break
		}
	}
}

// notifyCartChanged pushes a fresh snapshot to every socket the user holds.
// Delivery is best-effort; a stale or closed socket is dropped on the next
// read error.
func notifyCartChanged(engine *cart.Engine, userID uint) {
	wsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(wsClients[userID]))
	for conn := range wsClients[userID] {
		conns = append(conns, conn)
	}
	wsMu.Unlock()

	if len(conns) == 0 {
		return
	}

	view, err := engine.CartSnapshot(userID)
	if err != nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	for _, conn := range conns {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
