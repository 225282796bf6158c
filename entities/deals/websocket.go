package deals

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

type DealWSMessage struct {
	Action  string `json:"action"`
	Deal    any    `json:"deal"`
	Details string `json:"details"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var wsClients = make(map[*websocket.Conn]bool)
var wsMutex sync.Mutex

func BroadcastDealUpdate(msg DealWSMessage) {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsClients {
		err := client.WriteJSON(msg)
		if err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

// DealWebSocketHandler registers a board client for server-pushed updates.
// The feed is one-way: incoming frames are drained only to detect the close,
// never echoed to other clients.
func DealWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "websocketへのアップグレードに失敗しました", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	wsClients[conn] = true
	wsMutex.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	wsMutex.Lock()
	delete(wsClients, conn)
	wsMutex.Unlock()
}
