package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lacuchara/reservation-app/models"
)

// Event types pushed to the rendering surface.
const (
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventReservationCancel = "reservation_cancel"
	EventRestaurantCreate  = "restaurant_create"
	EventMenuUpdate        = "menu_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks open websocket connections per session. Events are delivered
// only to the connections of the session that produced them; sessions never
// observe each other.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> session id
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient binds a connection to its session.
func RegisterClient(conn *websocket.Conn, sessionID string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = sessionID
}

// UnregisterClient drops a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastReservationCreate(sessionID string, reservation models.Reservation) {
	broadcast(sessionID, Message{Event: EventReservationCreate, Data: reservation})
}

func BroadcastReservationUpdate(sessionID string, reservation models.Reservation) {
	broadcast(sessionID, Message{Event: EventReservationUpdate, Data: reservation})
}

func BroadcastReservationCancel(sessionID string, reservationID uint) {
	broadcast(sessionID, Message{
		Event: EventReservationCancel,
		Data:  map[string]interface{}{"id": reservationID},
	})
}

func BroadcastRestaurantCreate(sessionID string, restaurant models.Restaurant) {
	broadcast(sessionID, Message{Event: EventRestaurantCreate, Data: restaurant})
}

func BroadcastMenuUpdate(sessionID string, restaurantID uint) {
	broadcast(sessionID, Message{
		Event: EventMenuUpdate,
		Data:  map[string]interface{}{"restaurant_id": restaurantID},
	})
}

func broadcast(sessionID string, msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, owner := range hub.clients {
		if owner != sessionID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
		}
	}
}
