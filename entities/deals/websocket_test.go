package deals

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func wsClientCount() int {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	return len(wsClients)
}

func waitForClients(t *testing.T, want int) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if wsClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("client count never reached %d, at %d", want, wsClientCount())
}

func dialBoard(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(DealWebSocketHandler))
	defer server.Close()

	waitForClients(t, 0)

	connA := dialBoard(t, server)
	defer connA.Close()
	connB := dialBoard(t, server)
	defer connB.Close()

	waitForClients(t, 2)

	BroadcastDealUpdate(DealWSMessage{Action: "updated", Details: "stage"})

	for _, conn := range []*websocket.Conn{connA, connB} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		msg := DealWSMessage{}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("client did not receive the broadcast: %v", err)
		}
		if msg.Action != "updated" || msg.Details != "stage" {
			t.Errorf("received %+v", msg)
		}
	}
}

func TestClientFramesAreNotEchoed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(DealWebSocketHandler))
	defer server.Close()

	waitForClients(t, 0)

	sender := dialBoard(t, server)
	defer sender.Close()
	listener := dialBoard(t, server)
	defer listener.Close()

	waitForClients(t, 2)

	if err := sender.WriteJSON(DealWSMessage{Action: "deleted", Details: "forged"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	listener.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	msg := DealWSMessage{}
	if err := listener.ReadJSON(&msg); err == nil {
		t.Fatalf("client frame was echoed to other clients: %+v", msg)
	}
}

func TestDisconnectedClientIsRemoved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(DealWebSocketHandler))
	defer server.Close()

	waitForClients(t, 0)

	conn := dialBoard(t, server)
	waitForClients(t, 1)

	conn.Close()
	waitForClients(t, 0)
}
