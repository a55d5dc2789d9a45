//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

//go:embed index.html
var indexHTML []byte

// Shared-View Session Types

// ViewState is the shareable subset of field parameters, mirrored from the
// browser client.
type ViewState struct {
	Seed    uint32  `json:"seed"`
	Mode    int     `json:"mode"`
	Octaves int     `json:"octaves"`
	Scale   float64 `json:"scale"`
	Palette int     `json:"palette"`
}

// Validate rejects view state that would be invalid on any client,
// so one bad publisher cannot take down everyone else in the room.
func (s *ViewState) Validate() error {
	if s.Mode < 0 || s.Palette < 0 {
		return fmt.Errorf("mode and palette must be non-negative")
	}
	if s.Octaves < 1 || s.Octaves > 8 {
		return fmt.Errorf("octaves out of range: %d", s.Octaves)
	}
	if !(s.Scale > 0) {
		return fmt.Errorf("scale must be positive")
	}
	return nil
}

// SessionMessage is a shared-view message exchanged with clients.
type SessionMessage struct {
	Type      string     `json:"t"` // "state", "join", "leave", "viewers"
	RoomID    string     `json:"room,omitempty"`
	ViewerID  string     `json:"viewer,omitempty"`
	Timestamp int64      `json:"ts,omitempty"`
	State     *ViewState `json:"state,omitempty"`
}

// Viewer represents a connected viewer in a room
type Viewer struct {
	ID       string
	RoomID   string
	Messages chan []byte
	LastSeen time.Time // guarded by mu
	mu       sync.Mutex
}

// touch marks the viewer as live.
func (v *Viewer) touch() {
	v.mu.Lock()
	v.LastSeen = time.Now()
	v.mu.Unlock()
}

// idleFor reports whether the viewer has been silent longer than limit.
func (v *Viewer) idleFor(limit time.Duration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return time.Since(v.LastSeen) > limit
}

// Room represents a shared-view session
type Room struct {
	ID        string
	Viewers   map[string]*Viewer
	LastState *ViewState // most recent published state, replayed to joiners
	Created   time.Time
	mu        sync.RWMutex
}

// SessionServer relays view state between the viewers of each room
type SessionServer struct {
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewSessionServer creates a new session server
func NewSessionServer() *SessionServer {
	s := &SessionServer{
		rooms: make(map[string]*Room),
	}
	// Start cleanup goroutine
	go s.cleanup()
	return s
}

// cleanup removes stale viewers and empty rooms
func (s *SessionServer) cleanup() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for roomID, room := range s.rooms {
			room.mu.Lock()
			for viewerID, viewer := range room.Viewers {
				if viewer.idleFor(60 * time.Second) {
					close(viewer.Messages)
					delete(room.Viewers, viewerID)
					log.Printf("Removed stale viewer %s from room %s", viewerID, roomID)
				}
			}
			if len(room.Viewers) == 0 {
				delete(s.rooms, roomID)
				log.Printf("Removed empty room %s", roomID)
			}
			room.mu.Unlock()
		}
		s.mu.Unlock()
	}
}

// GetOrCreateRoom gets or creates a room
func (s *SessionServer) GetOrCreateRoom(roomID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room, exists := s.rooms[roomID]; exists {
		return room
	}

	room := &Room{
		ID:      roomID,
		Viewers: make(map[string]*Viewer),
		Created: time.Now(),
	}
	s.rooms[roomID] = room
	log.Printf("Created room %s", roomID)
	return room
}

// AddViewer adds a viewer to a room
func (s *SessionServer) AddViewer(roomID, viewerID string) *Viewer {
	room := s.GetOrCreateRoom(roomID)

	room.mu.Lock()
	defer room.mu.Unlock()

	// Remove existing viewer with same ID if exists
	if existing, exists := room.Viewers[viewerID]; exists {
		close(existing.Messages)
	}

	viewer := &Viewer{
		ID:       viewerID,
		RoomID:   roomID,
		Messages: make(chan []byte, 100),
		LastSeen: time.Now(),
	}
	room.Viewers[viewerID] = viewer
	log.Printf("Viewer %s joined room %s", viewerID, roomID)

	return viewer
}

// RemoveViewer removes a viewer from a room
func (s *SessionServer) RemoveViewer(roomID, viewerID string) {
	s.mu.RLock()
	room, exists := s.rooms[roomID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if viewer, exists := room.Viewers[viewerID]; exists {
		close(viewer.Messages)
		delete(room.Viewers, viewerID)
		log.Printf("Viewer %s left room %s", viewerID, roomID)
	}
}

// SetRoomState records the room's current view state for replay to joiners
func (s *SessionServer) SetRoomState(roomID string, state *ViewState) {
	s.mu.RLock()
	room, exists := s.rooms[roomID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	room.mu.Lock()
	room.LastState = state
	room.mu.Unlock()
}

// RoomState returns the room's most recently published view state
func (s *SessionServer) RoomState(roomID string) *ViewState {
	s.mu.RLock()
	room, exists := s.rooms[roomID]
	s.mu.RUnlock()

	if !exists {
		return nil
	}

	room.mu.RLock()
	defer room.mu.RUnlock()
	return room.LastState
}

// BroadcastToRoom sends a message to all viewers in a room except sender
func (s *SessionServer) BroadcastToRoom(roomID, senderID string, msg []byte) {
	s.mu.RLock()
	room, exists := s.rooms[roomID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	room.mu.RLock()
	defer room.mu.RUnlock()

	for viewerID, viewer := range room.Viewers {
		if viewerID != senderID {
			select {
			case viewer.Messages <- msg:
			default:
				log.Printf("Message buffer full for viewer %s", viewerID)
			}
		}
	}
}

// ViewersInRoom returns list of viewer IDs in a room
func (s *SessionServer) ViewersInRoom(roomID string) []string {
	s.mu.RLock()
	room, exists := s.rooms[roomID]
	s.mu.RUnlock()

	if !exists {
		return nil
	}

	room.mu.RLock()
	defer room.mu.RUnlock()

	viewers := make([]string, 0, len(room.Viewers))
	for viewerID := range room.Viewers {
		viewers = append(viewers, viewerID)
	}
	return viewers
}

// Global session server instance
var sessions = NewSessionServer()

// HTTP Handlers

// handleSession handles shared-view sessions via Server-Sent Events (SSE)
func handleSession(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	roomID := r.URL.Query().Get("room")
	viewerID := r.URL.Query().Get("viewer")

	if roomID == "" || viewerID == "" {
		http.Error(w, "room and viewer query parameters required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case "GET":
		// SSE connection for receiving state updates
		handleSSE(w, r, roomID, viewerID)
	case "POST":
		// Publish a state update
		handleStatePost(w, r, roomID, viewerID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSSE handles Server-Sent Events for a viewer
func handleSSE(w http.ResponseWriter, r *http.Request, roomID, viewerID string) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	// Add viewer to room
	viewer := sessions.AddViewer(roomID, viewerID)

	// Send current viewers list
	viewers := sessions.ViewersInRoom(roomID)
	viewersJSON, _ := json.Marshal(map[string]interface{}{
		"t":       "viewers",
		"viewers": viewers,
	})
	fmt.Fprintf(w, "data: %s\n\n", viewersJSON)
	flusher.Flush()

	// Replay the room's current state so the joiner syncs immediately
	if state := sessions.RoomState(roomID); state != nil {
		stateJSON, _ := json.Marshal(SessionMessage{
			Type:      "state",
			RoomID:    roomID,
			Timestamp: time.Now().Unix(),
			State:     state,
		})
		fmt.Fprintf(w, "data: %s\n\n", stateJSON)
		flusher.Flush()
	}

	// Notify other viewers about the new viewer
	joinMsg, _ := json.Marshal(SessionMessage{
		Type:      "join",
		RoomID:    roomID,
		ViewerID:  viewerID,
		Timestamp: time.Now().Unix(),
	})
	sessions.BroadcastToRoom(roomID, viewerID, joinMsg)

	// Periodic keepalive so a quiet room does not look stale to cleanup.
	keepalive := time.NewTicker(15 * time.Second)
	defer keepalive.Stop()

	// Stream messages to viewer
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			sessions.RemoveViewer(roomID, viewerID)

			// Notify other viewers
			leaveMsg, _ := json.Marshal(SessionMessage{
				Type:      "leave",
				RoomID:    roomID,
				ViewerID:  viewerID,
				Timestamp: time.Now().Unix(),
			})
			sessions.BroadcastToRoom(roomID, viewerID, leaveMsg)
			return

		case <-keepalive.C:
			// SSE comment line; clients ignore it.
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
			viewer.touch()

		case msg, ok := <-viewer.Messages:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
			viewer.touch()
		}
	}
}

// handleStatePost handles published view state updates
func handleStatePost(w http.ResponseWriter, r *http.Request, roomID, viewerID string) {
	var msg SessionMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if msg.Type != "state" || msg.State == nil {
		http.Error(w, "state message required", http.StatusBadRequest)
		return
	}
	if err := msg.State.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg.RoomID = roomID
	msg.ViewerID = viewerID
	msg.Timestamp = time.Now().Unix()

	msgBytes, _ := json.Marshal(msg)

	log.Printf("State %s in room %s: seed=%d mode=%d", viewerID, roomID, msg.State.Seed, msg.State.Mode)

	sessions.SetRoomState(roomID, msg.State)
	sessions.BroadcastToRoom(roomID, viewerID, msgBytes)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleRooms returns list of active rooms (for debugging/lobby)
func handleRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sessions.mu.RLock()
	defer sessions.mu.RUnlock()

	rooms := make([]map[string]interface{}, 0, len(sessions.rooms))
	for roomID, room := range sessions.rooms {
		room.mu.RLock()
		rooms = append(rooms, map[string]interface{}{
			"id":          roomID,
			"viewerCount": len(room.Viewers),
			"created":     room.Created.Unix(),
		})
		room.mu.RUnlock()
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"rooms": rooms,
	})
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	// Serve embedded index.html at root path
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files from disk
		http.FileServer(http.Dir(*staticDir)).ServeHTTP(w, r)
	})

	// Shared-view session endpoint
	http.HandleFunc("/api/session", handleSession)

	// Room list endpoint (for lobby/debugging)
	http.HandleFunc("/api/rooms", handleRooms)

	// Health check
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("SquirrelNoise demo server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Shared-view endpoint: /api/session?room=ROOM_ID&viewer=VIEWER_ID")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
