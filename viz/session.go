//go:build js
// +build js

package viz

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/TheZoc/squirrelnoise/rng"
)

// Shared-view sessions: every viewer in a room sees the same field. State
// changes are POSTed to the server and fan out to the room over SSE.

// ViewState is the shareable subset of field parameters.
type ViewState struct {
	Seed    uint32  `json:"seed"`
	Mode    int     `json:"mode"`
	Octaves int     `json:"octaves"`
	Scale   float64 `json:"scale"`
	Palette int     `json:"palette"`
}

// SessionMessage is the wire format exchanged with the session server.
type SessionMessage struct {
	Type      string     `json:"t"`
	RoomID    string     `json:"room,omitempty"`
	ViewerID  string     `json:"viewer,omitempty"`
	Timestamp int64      `json:"ts,omitempty"`
	State     *ViewState `json:"state,omitempty"`
}

// Session is a client connection to one shared-view room.
type Session struct {
	RoomID   string
	ViewerID string

	owner     *App
	source    *js.Object // EventSource
	connected bool
}

// NewSession prepares a session client for the app. It does not connect.
func NewSession(owner *App) *Session {
	return &Session{
		owner:    owner,
		ViewerID: "v" + strconv.FormatUint(uint64(uint32(rng.NewSeed())), 36),
	}
}

// Connected reports whether the SSE stream is open.
func (s *Session) Connected() bool {
	return s.connected
}

// Join opens the SSE stream for a room and starts applying broadcast state.
func (s *Session) Join(roomID string) {
	s.Leave()
	s.RoomID = roomID

	url := "/api/session?room=" + roomID + "&viewer=" + s.ViewerID
	es := js.Global.Get("EventSource").New(url)
	s.source = es

	es.Call("addEventListener", "open", func(event *js.Object) {
		s.connected = true
		Debug("session open:", roomID)
	})

	es.Call("addEventListener", "message", func(event *js.Object) {
		data := event.Get("data").String()
		var msg SessionMessage
		if err := json.Unmarshal([]byte(data), &msg); err != nil {
			DebugError("session message:", err.Error())
			return
		}
		// Ignore our own broadcasts echoed back by the server.
		if msg.ViewerID == s.ViewerID {
			return
		}
		if msg.Type == "state" && msg.State != nil {
			s.owner.ApplyViewState(*msg.State)
		}
	})

	es.Call("addEventListener", "error", func(event *js.Object) {
		DebugWarn("session stream error")
	})
}

// Leave closes the stream, if any.
func (s *Session) Leave() {
	if s.source != nil {
		s.source.Call("close")
		s.source = nil
	}
	s.connected = false
	s.RoomID = ""
}

// Publish sends the given view state to the room.
func (s *Session) Publish(state ViewState) {
	if !s.connected {
		return
	}
	msg := SessionMessage{
		Type:      "state",
		RoomID:    s.RoomID,
		ViewerID:  s.ViewerID,
		Timestamp: time.Now().Unix(),
		State:     &state,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		DebugError("session publish:", err.Error())
		return
	}

	xhr := js.Global.Get("XMLHttpRequest").New()
	xhr.Call("open", "POST", "/api/session?room="+s.RoomID+"&viewer="+s.ViewerID, true)
	xhr.Call("setRequestHeader", "Content-Type", "application/json")
	xhr.Call("send", string(body))
}
