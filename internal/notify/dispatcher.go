package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

var (
	ErrQueueFull = errors.New("email queue is full")
	ErrStopped   = errors.New("email dispatcher is stopped")
)

const sendTimeout = 30 * time.Second

// Email is a single queued message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher sends queued emails from background workers so that request
// handlers never wait on the mail provider. Failed sends are logged, not retried.
type Dispatcher struct {
	mailer model.Mailer
	logger *logger.Logger
	jobs   chan Email
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(mailer model.Mailer, queueSize int, logger *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		mailer: mailer,
		logger: logger,
		jobs:   make(chan Email, queueSize),
	}
}

// Start launches the workers. It must be called once.
func (d *Dispatcher) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for email := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.mailer.Send(ctx, email.To, email.Subject, email.Body)
		cancel()

		if err != nil {
			d.logger.Error("Notify: failed to send email",
				"email", email.To,
				"subject", email.Subject,
				"error", err.Error())
			continue
		}
		d.logger.Debug("Notify: email sent", "email", email.To, "subject", email.Subject)
	}
}

// Enqueue queues email without blocking.
func (d *Dispatcher) Enqueue(email Email) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.jobs <- email:
		return nil
	default:
		return ErrQueueFull
	}
}

// SendRegistrationEmail queues the message asking a new user to confirm their address.
func (d *Dispatcher) SendRegistrationEmail(email, confirmationURL string) error {
	return d.Enqueue(Email{
		To:      email,
		Subject: "Successfully signed up",
		Body: fmt.Sprintf(
			"Hi %s! You have successfully signed up to the Stores REST API."+
				" Please confirm your email by clicking on the following link: %s",
			email, confirmationURL,
		),
	})
}

// Stop rejects new emails, waits for queued ones to be sent and returns.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}
