package conn

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// WSConfig describes the websocket simulator connection.
type WSConfig struct {
	// URL of the simulator endpoint, such as ws://localhost:8462/frames.
	URL string

	// Header is sent with the websocket handshake.
	Header http.Header
}

type wsSink struct {
	url  string
	conn *websocket.Conn
}

// OpenWS dials a remote display simulator and binds a sink to it. Every
// frame is forwarded as a single binary websocket message.
func OpenWS(config *WSConfig) (Sink, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNoPort
	}

	c, _, err := websocket.DefaultDialer.Dial(config.URL, config.Header)
	if err != nil {
		return nil, err
	}

	return &wsSink{
		url:  config.URL,
		conn: c,
	}, nil
}

func (s *wsSink) String() string {
	return fmt.Sprintf("websocket %s", s.url)
}

func (s *wsSink) Write(frame []byte) error {
	if s.conn == nil {
		return ErrClosed
	}
	return s.conn.WriteMessage(websocket.BinaryMessage, frame)
}

func (s *wsSink) Close() error {
	if s.conn == nil {
		return ErrClosed
	}
	c := s.conn
	s.conn = nil
	_ = c.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.Close()
}
