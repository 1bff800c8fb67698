package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/logging"
)

// Message types of the session protocol
const (
	MsgPing       = "ping"
	MsgPong       = "pong"
	MsgSet        = "set"
	MsgApply      = "apply"
	MsgUndo       = "undo"
	MsgState      = "state"
	MsgList       = "list"
	MsgTransforms = "transforms"
	MsgError      = "error"
)

// WSMessage is a client request
type WSMessage struct {
	Type    string          `json:"type"`              // "ping", "set", "apply", "undo", "state", "list"
	Payload json.RawMessage `json:"payload,omitempty"` // Message-specific payload
}

// WSSetPayload replaces the session buffer
type WSSetPayload struct {
	Buffer string `json:"buffer"`
}

// WSApplyPayload runs one transform on the session buffer
type WSApplyPayload struct {
	ID          string `json:"id"`
	Pattern     string `json:"pattern,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"`              // "pong", "state", "transforms", "error"
	Payload interface{} `json:"payload,omitempty"` // Response-specific payload
}

// WSStatePayload reports the session buffer and its history
type WSStatePayload struct {
	Session string `json:"session"`
	Buffer  string `json:"buffer"`
	CanUndo bool   `json:"can_undo"`
	Depth   int    `json:"depth"`
	Applied bool   `json:"applied"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload = ErrorResponse

// webSocketHandler upgrades connections and runs one session each
type webSocketHandler struct {
	server   *Server
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

func newWebSocketHandler(s *Server) *webSocketHandler {
	h := &webSocketHandler{
		server: s,
		logger: logging.New("websocket"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin, r.Host)
		},
	}
	return h
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *webSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := int64(h.server.config.MaxSessions)
	if n := h.server.sessions.Add(1); limit > 0 && n > limit {
		h.server.sessions.Add(-1)
		h.server.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Code:    "SESSION_LIMIT",
			Message: "too many open sessions",
		})
		return
	}
	defer h.server.sessions.Add(-1)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// session is the state owned by one connection
type session struct {
	conn   *websocket.Conn
	engine *engine.Engine
	buffer string
	logger *logging.Logger

	writeTimeout time.Duration
}

// handleConnection runs the request loop of a single connection
func (h *webSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	eng := engine.New(engine.WithCatalog(h.server.catalog))
	sess := &session{
		conn:         conn,
		engine:       eng,
		logger:       h.logger.WithSession(eng.ID()).With("remote", conn.RemoteAddr().String()),
		writeTimeout: h.server.config.WriteTimeout,
	}

	sess.logger.Info("WebSocket session opened")
	defer func() {
		sess.logger.Info("WebSocket session closed", "depth", eng.Depth())
	}()

	conn.SetReadLimit(maxBodyBytes)

	idle := h.server.config.ReadTimeout
	if idle > 0 {
		conn.SetReadDeadline(time.Now().Add(idle))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(idle))
		})

		done := make(chan struct{})
		defer close(done)
		go sess.keepAlive(idle*9/10, done)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.logger.ErrorWithErr("WebSocket read error", err)
			}
			return
		}
		if idle > 0 {
			conn.SetReadDeadline(time.Now().Add(idle))
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.sendError(mdwerror.Wrap(err, "invalid message").WithCode(mdwerror.CodeProtocolError))
			continue
		}
		if err := sess.handle(msg); err != nil {
			sess.sendError(err)
		}
	}
}

// handle dispatches one message. A returned error is reported to the client
// and leaves the session unchanged.
func (s *session) handle(msg WSMessage) error {
	switch msg.Type {
	case MsgPing:
		s.send(WSResponse{Type: MsgPong})

	case MsgSet:
		var p WSSetPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		s.buffer = p.Buffer
		s.sendState(false)

	case MsgApply:
		var p WSApplyPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		id, err := s.engine.Catalog().ParseID(p.ID)
		if err != nil {
			return err
		}
		out, err := s.engine.Apply(id, s.buffer, transform.Args{Pattern: p.Pattern, Replacement: p.Replacement})
		if err != nil {
			return err
		}
		s.buffer = out.Text
		s.sendState(out.Applied)

	case MsgUndo:
		prev, ok := s.engine.Undo()
		if !ok {
			return mdwerror.New("nothing to undo").
				WithCode(mdwerror.CodeNothingToUndo).
				WithSessionID(s.engine.ID())
		}
		s.buffer = prev
		s.sendState(true)

	case MsgState:
		s.sendState(false)

	case MsgList:
		s.send(WSResponse{Type: MsgTransforms, Payload: listingOf(s.engine.Catalog(), "")})

	default:
		return mdwerror.Newf("unknown message type: %q", msg.Type).WithCode(mdwerror.CodeProtocolError)
	}
	return nil
}

func decodePayload(msg WSMessage, v interface{}) error {
	if len(msg.Payload) == 0 {
		return mdwerror.Newf("%s requires a payload", msg.Type).WithCode(mdwerror.CodeProtocolError)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return mdwerror.Wrap(err, "invalid "+msg.Type+" payload").WithCode(mdwerror.CodeProtocolError)
	}
	return nil
}

func (s *session) sendState(applied bool) {
	s.send(WSResponse{
		Type: MsgState,
		Payload: WSStatePayload{
			Session: s.engine.ID(),
			Buffer:  s.buffer,
			CanUndo: s.engine.CanUndo(),
			Depth:   s.engine.Depth(),
			Applied: applied,
		},
	})
}

// send writes a response message via WebSocket
func (s *session) send(resp WSResponse) {
	if s.writeTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if err := s.conn.WriteJSON(resp); err != nil {
		s.logger.WarnWithErr("WebSocket send error", err)
	}
}

func (s *session) sendError(err error) {
	s.logger.Debug("request rejected", "error", err)
	s.send(WSResponse{Type: MsgError, Payload: errorPayload(err)})
}

// keepAlive pings the peer until done is closed
func (s *session) keepAlive(period time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// originAllowed reports whether a browser origin may use the API. Without
// configured origins only same-host pages are accepted; "*" accepts all.
func (s *Server) originAllowed(origin, host string) bool {
	for _, allowed := range s.config.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, host)
}

// listingOf lists the catalog in group order, restricted to group when set
func listingOf(c *transform.Catalog, group transform.Group) TransformsResponse {
	resp := TransformsResponse{}
	for _, g := range c.Groups() {
		if group != "" && g != group {
			continue
		}
		resp.Groups = append(resp.Groups, GroupInfo{ID: g, Title: g.Title()})
		resp.Transforms = append(resp.Transforms, c.ByGroup(g)...)
	}
	resp.Total = len(resp.Transforms)
	return resp
}
