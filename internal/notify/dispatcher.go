package notify

import (
	"errors"
	"log"
	"sync"
)

const queueSize = 64

var errNotInitialized = errors.New("notifications not initialized")

// Dispatcher delivers emails from a queue on a single background worker.
// Delivery is best-effort: a transition that enqueued a message has already
// committed, so send failures are logged and dropped, never propagated.
type Dispatcher struct {
	sender Sender
	queue  chan Email
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Email, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for email := range d.queue {
		if err := d.sender.Send(email); err != nil {
			log.Printf("Failed to send email to %s: %v", email.To, err)
		}
	}
}

// Enqueue queues an email for delivery. If the queue is full the message is
// dropped and logged rather than blocking the request that produced it.
func (d *Dispatcher) Enqueue(email Email) {
	select {
	case d.queue <- email:
	default:
		log.Printf("Notification queue full, dropping email to %s", email.To)
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

var dispatcher *Dispatcher

// Init wires the package-level dispatcher used by the handlers.
func Init(sender Sender) {
	dispatcher = NewDispatcher(sender)
}

// Enqueue queues an email on the package-level dispatcher.
func Enqueue(email Email) {
	if dispatcher == nil {
		log.Printf("Notifications not initialized, dropping email to %s", email.To)
		return
	}

	dispatcher.Enqueue(email)
}

// Send delivers an email synchronously, bypassing the queue. Used where the
// send itself is the requested operation rather than a side effect.
func Send(email Email) error {
	if dispatcher == nil {
		return errNotInitialized
	}

	return dispatcher.sender.Send(email)
}
