package relay

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/phanxgames/gesture"
)

const (
	writeWait      = 10 * time.Second
	maxFrameBytes  = 64 << 10
	defaultRegion  = "remote"
	closeBadFrames = 8
)

// Options configures a Server.
type Options struct {
	// Region tags every forwarded gesture. Defaults to "remote".
	Region string
	// Config is the starting recognizer configuration for each session.
	// The zero value uses the package defaults.
	Config gesture.Config
	// AllowedOrigins restricts the websocket handshake. Empty allows any
	// origin.
	AllowedOrigins []string
	// OnGesture, when set, observes every gesture after it is written.
	OnGesture func(session string, e GestureFrame)
}

// Server upgrades HTTP requests to relay sessions.
type Server struct {
	opts     Options
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewServer creates a Server.
func NewServer(opts Options) *Server {
	if opts.Region == "" {
		opts.Region = defaultRegion
	}
	s := &Server{opts: opts, sessions: make(map[string]*Session)}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	for _, allowed := range s.opts.AllowedOrigins {
		if allowed == origin || allowed == u.Host {
			return true
		}
	}
	return false
}

// Register mounts the websocket endpoint at /relay/ws and the frame schemas
// at /relay/schema.
func (s *Server) Register(rg gin.IRoutes) {
	rg.GET("/relay/ws", gin.WrapH(s))
	rg.GET("/relay/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, Schemas())
	})
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) add(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

func (s *Server) remove(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
	sess.Close()
}

// ServeHTTP upgrades the request and runs the session until the client
// disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("relay upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameBytes)

	sess := NewSession(uuid.NewString(), s.opts.Region, s.opts.Config)
	s.add(sess)
	defer s.remove(sess)
	log.Printf("relay session %s connected from %s", sess.ID, r.RemoteAddr)

	if err := writeFrame(conn, ServerFrame{Type: FrameHello, Session: sess.ID}); err != nil {
		log.Printf("relay session %s: hello failed: %v", sess.ID, err)
		return
	}

	bad := 0
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("relay session %s: read error: %v", sess.ID, err)
			}
			break
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("discarding malformed frame from %s: %v", sess.ID, err)
			if s.reject(conn, sess, &bad, "malformed frame") {
				break
			}
			continue
		}

		out, err := sess.Apply(frame)
		if err != nil {
			log.Printf("relay session %s: %v", sess.ID, err)
			if s.reject(conn, sess, &bad, err.Error()) {
				break
			}
			continue
		}
		for _, f := range out {
			if err := writeFrame(conn, f); err != nil {
				log.Printf("relay session %s: write failed: %v", sess.ID, err)
				return
			}
			if f.Gesture != nil && s.opts.OnGesture != nil {
				s.opts.OnGesture(sess.ID, *f.Gesture)
			}
		}
	}
	log.Printf("relay session %s closed", sess.ID)
}

// reject reports a bad frame to the client. After closeBadFrames rejections
// the connection is closed with a policy violation and reject returns true.
func (s *Server) reject(conn *websocket.Conn, sess *Session, bad *int, reason string) bool {
	*bad++
	if *bad >= closeBadFrames {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "too many invalid frames"))
		return true
	}
	if err := writeFrame(conn, ServerFrame{Type: FrameError, Session: sess.ID, Error: reason}); err != nil {
		return true
	}
	return false
}

func writeFrame(conn *websocket.Conn, f ServerFrame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
