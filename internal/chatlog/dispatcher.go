package chatlog

import (
	"log"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

// Entry is one chat exchange to persist.
type Entry struct {
	Email           string
	Messages        []models.ChatMessage
	FaceDescription string
	Reply           string
	RejectReason    string
}

// Dispatcher persists chat logs off the request path through a buffered
// channel and a single worker. Logging must never block or fail the AI
// endpoint, so a full queue drops the entry.
type Dispatcher struct {
	store Store
	queue chan Entry
}

func NewDispatcher(store Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Entry, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if err := d.store.SaveChatLog(&models.ChatLog{
			Email:           e.Email,
			Messages:        e.Messages,
			FaceDescription: e.FaceDescription,
			Reply:           e.Reply,
			RejectReason:    e.RejectReason,
		}); err != nil {
			log.Println("chatlog error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(e Entry) {
	select {
	case d.queue <- e:
	default:
		log.Println("chatlog queue full, dropping entry")
	}
}
