package messaging

import (
	"context"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"Postline/internal/core/posts"
)

// Subject layout: one request/reply subject per command, "posts.<cmd>".
// All instances join the same queue group so exactly one handles each
// request.
const (
	subjectPrefix = "posts."
	queueGroup    = "posts"
)

// Server subscribes the post command handlers to NATS.
type Server struct {
	nc         *nats.Conn
	dispatcher *Dispatcher
	subs       []*nats.Subscription
}

// NewServer creates an RPC server over an established NATS connection.
func NewServer(nc *nats.Conn, service posts.Service) *Server {
	return &Server{
		nc:         nc,
		dispatcher: NewDispatcher(service),
	}
}

// Start subscribes every post command on its subject.
func (s *Server) Start() error {
	for cmd, handler := range s.dispatcher.Handlers() {
		sub, err := s.nc.QueueSubscribe(subjectPrefix+cmd, queueGroup, s.msgHandler(handler))
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s%s: %w", subjectPrefix, cmd, err)
		}
		s.subs = append(s.subs, sub)
	}
	log.Printf("RPC server listening on %s* (%d commands)", subjectPrefix, len(s.subs))
	return nil
}

// Drain unsubscribes and lets in-flight handlers finish.
func (s *Server) Drain() {
	for _, sub := range s.subs {
		if err := sub.Drain(); err != nil {
			log.Printf("WARN: failed to drain subscription %s: %v", sub.Subject, err)
		}
	}
}

func (s *Server) msgHandler(handler HandlerFunc) nats.MsgHandler {
	return func(msg *nats.Msg) {
		result, err := handler(context.Background(), msg.Data)
		if err != nil && !posts.IsValidationError(err) && !posts.IsNotFound(err) {
			log.Printf("RPC %s failed: %v", msg.Subject, err)
		}
		if msg.Reply == "" {
			return
		}
		if err := msg.Respond(encodeReply(result, err)); err != nil {
			log.Printf("Failed to respond on %s: %v", msg.Subject, err)
		}
	}
}
