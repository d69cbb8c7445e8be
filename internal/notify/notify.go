// Package notify delivers outward messages (user notifications, admin
// pings, audit channel entries) through an outbox: senders enqueue and move
// on, workers deliver to the chat transport's webhook, and failed deliveries
// are kept for retry instead of being dropped with a log line.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/tukarid/tukarbot/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	queueSize     = 256
	workers       = 4
	maxAttempts   = 5
	retryInterval = time.Second * 30
)

type Poster interface {
	PostJSON(url string, payload any) (statusCode int, respBody []byte, err error)
}

type Message struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type pending struct {
	msg      Message
	attempts int
}

type Outbox struct {
	client       Poster
	transportURL string
	auditChannel string
	adminIDs     []string

	queue chan Message

	mu     sync.Mutex
	failed []pending
}

func New(cfg *config.Config, client Poster) *Outbox {
	return &Outbox{
		client:       client,
		transportURL: cfg.TransportURL,
		auditChannel: cfg.AuditChannel,
		adminIDs:     cfg.AdminIDs,
		queue:        make(chan Message, queueSize),
	}
}

func (o *Outbox) NotifyUser(userID, text string) {
	o.enqueue(Message{ChatID: userID, Text: text})
}

func (o *Outbox) NotifyAdmins(text string) {
	for _, admin := range o.adminIDs {
		o.enqueue(Message{ChatID: admin, Text: text})
	}
}

func (o *Outbox) Audit(text string) {
	if o.auditChannel == "" {
		return
	}
	o.enqueue(Message{ChatID: o.auditChannel, Text: text})
}

// enqueue never blocks the triggering workflow: a full queue routes the
// message straight to the retry list.
func (o *Outbox) enqueue(msg Message) {
	select {
	case o.queue <- msg:
	default:
		o.park(pending{msg: msg})
	}
}

func (o *Outbox) park(p pending) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, p)
}

// Start runs the delivery workers and the retry loop until ctx is done.
func (o *Outbox) Start(ctx context.Context) {
	zap.L().Info("notification outbox started")

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case msg := <-o.queue:
					o.deliver(pending{msg: msg})
				}
			}
		})
	}
	g.Go(func() error {
		ticker := time.NewTicker(retryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				o.retryFailed()
			}
		}
	})

	g.Wait()
	zap.L().Info("notification outbox stopped")
}

func (o *Outbox) deliver(p pending) {
	if o.transportURL == "" {
		return
	}

	status, _, err := o.client.PostJSON(o.transportURL, p.msg)
	if err == nil && status >= 200 && status < 300 {
		return
	}

	p.attempts++
	if p.attempts >= maxAttempts {
		zap.L().Error("notification dropped after retries",
			zap.String("chatID", p.msg.ChatID),
			zap.Int("attempts", p.attempts),
			zap.Error(err))
		return
	}
	zap.L().Warn("notification delivery failed, parked for retry",
		zap.String("chatID", p.msg.ChatID),
		zap.Int("attempts", p.attempts),
		zap.Error(err))
	o.park(p)
}

func (o *Outbox) retryFailed() {
	o.mu.Lock()
	batch := o.failed
	o.failed = nil
	o.mu.Unlock()

	for _, p := range batch {
		o.deliver(p)
	}
}
