// Package realtime subscribes to change notifications from the remote
// service over a websocket: session changes and inbox activity.
//
// There is no automatic reconnect. A dropped socket surfaces through the
// handler's Closed callback and the owner decides whether to dial again,
// the same way the surrounding app framework would.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Event is one decoded notification frame.
type Event struct {
	Topic   string          `json:"topic"`
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type Handler func(Event)

type Subscriber struct {
	url   string
	token string
	log   zerolog.Logger

	mu       sync.RWMutex
	conn     *websocket.Conn
	handlers map[string][]Handler
	closed   chan struct{}
}

func NewSubscriber(url, token string, log zerolog.Logger) *Subscriber {
	return &Subscriber{
		url:      url,
		token:    token,
		log:      log,
		handlers: make(map[string][]Handler),
		closed:   make(chan struct{}),
	}
}

// Subscribe registers a handler for a topic ("session", "inbox:<user-id>").
// Registration before Connect is fine.
func (s *Subscriber) Subscribe(topic string, h Handler) {
	s.mu.Lock()
	s.handlers[topic] = append(s.handlers[topic], h)
	s.mu.Unlock()
}

// Connect dials the socket and starts the read loop. Tokens travel as a
// query parameter: websocket handshakes carry no custom headers from every
// client.
func (s *Subscriber) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url+"?token="+s.token, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	topics := s.topics()
	for _, t := range topics {
		if err := conn.WriteJSON(map[string]string{"action": "subscribe", "topic": t}); err != nil {
			conn.Close()
			return err
		}
	}

	go s.readLoop()
	s.log.Info().Int("topics", len(topics)).Msg("realtime connected")
	return nil
}

// Closed reports when the read loop has stopped, for owners that want to
// know the stream is gone.
func (s *Subscriber) Closed() <-chan struct{} {
	return s.closed
}

func (s *Subscriber) Close() error {
	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (s *Subscriber) readLoop() {
	defer close(s.closed)

	for {
		s.mu.RLock()
		conn := s.conn
		s.mu.RUnlock()
		if conn == nil {
			return
		}

		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			s.log.Info().Err(err).Msg("realtime stream closed")
			return
		}
		s.dispatch(ev)
	}
}

func (s *Subscriber) dispatch(ev Event) {
	s.mu.RLock()
	handlers := append([]Handler(nil), s.handlers[ev.Topic]...)
	s.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

func (s *Subscriber) topics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.handlers))
	for t := range s.handlers {
		out = append(out, t)
	}
	return out
}
