package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"context"
	"encoding/json"
	"log"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/gorilla/websocket"
)

// Hub fans catalog and order change events out to connected websocket
// clients. The pricing engine never subscribes; only storefront caches do.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var defaultHub = &Hub{clients: make(map[*websocket.Conn]bool)}

// GetHub returns the process-wide hub instance
func GetHub() *Hub {
	return defaultHub
}

// Register adds a client connection to the broadcast set
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

// Unregister removes a client connection
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Broadcast sends the event to every connected client. Clients that fail
// the write are dropped.
func (h *Hub) Broadcast(event models.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

type RealtimeService struct {
	FirestoreClient *firestore.Client
	Hub             *Hub
}

// NewRealtimeService initializes RealtimeService with the Firestore client
// and the shared hub
func NewRealtimeService() *RealtimeService {
	return &RealtimeService{
		FirestoreClient: database.GetFirestoreClient(),
		Hub:             GetHub(),
	}
}

// WatchMenu follows the menu_items collection snapshots and republishes
// document changes as INSERT/UPDATE/DELETE events. Runs until the context
// is cancelled; meant to be started once from main.
func (s *RealtimeService) WatchMenu(ctx context.Context) {
	snapIter := s.FirestoreClient.Collection("menu_items").Snapshots(ctx)
	defer snapIter.Stop()

	first := true
	for {
		snap, err := snapIter.Next()
		if err != nil {
			log.Println("Menu snapshot listener stopped:", err)
			return
		}

		// The first snapshot replays the whole collection as additions;
		// skip it so connecting clients only see real mutations.
		if first {
			first = false
			continue
		}

		for _, change := range snap.Changes {
			event := models.ChangeEvent{Table: "menu_items"}

			switch change.Kind {
			case firestore.DocumentAdded:
				event.Event = models.ChangeInsert
			case firestore.DocumentModified:
				event.Event = models.ChangeUpdate
			case firestore.DocumentRemoved:
				event.Event = models.ChangeDelete
				event.OldID = change.Doc.Ref.ID
			}

			if event.Event != models.ChangeDelete {
				var item models.MenuItem
				if err := change.Doc.DataTo(&item); err != nil {
					continue
				}
				item.ID = change.Doc.Ref.ID
				item.Normalize()
				event.New = item
			}

			s.Hub.Broadcast(event)
		}
	}
}
