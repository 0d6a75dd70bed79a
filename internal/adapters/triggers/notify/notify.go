// Package notify provides a trigger that publishes update summaries to NATS.
package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.trai.ch/zerr"
)

// Identifier is the name the trigger is registered under.
const Identifier = "pacforge.triggers.notify.NotifyTrigger"

const (
	connectTimeout = 5 * time.Second
	publishTimeout = 5 * time.Second
)

func init() {
	triggers.Register(Identifier, func(env triggers.Environment) (any, error) {
		return New(env)
	})
}

// Message is the payload published after each run.
type Message struct {
	Repository   string    `json:"repository"`
	Architecture string    `json:"architecture"`
	Updated      []string  `json:"updated"`
	Failed       []string  `json:"failed"`
	Timestamp    time.Time `json:"timestamp"`
}

// NotifyTrigger publishes a Message for every result.
type NotifyTrigger struct {
	triggers.Base
	repository domain.RepositoryID
	url        string
	subject    string
	jetstream  bool

	mu   sync.Mutex
	conn *nats.Conn
	js   jetstream.JetStream
}

// New creates a notify trigger. The server and subject come from the notify
// configuration and can be overridden with the "url" and "subject" options.
// The "jetstream" option publishes through JetStream instead of core NATS.
func New(env triggers.Environment) (*NotifyTrigger, error) {
	t := &NotifyTrigger{repository: env.Repository}
	if env.Configuration != nil {
		t.url = env.Configuration.Notify.URL
		t.subject = env.Configuration.Notify.Subject
	}
	if url, ok := env.Options["url"]; ok {
		t.url = url
	}
	if subject, ok := env.Options["subject"]; ok {
		t.subject = subject
	}
	if value, ok := env.Options["jetstream"]; ok {
		js, err := strconv.ParseBool(value)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid jetstream option"), "value", value)
		}
		t.jetstream = js
	}

	if t.url == "" {
		return nil, zerr.New("notify trigger requires a NATS url")
	}
	if t.subject == "" {
		return nil, zerr.New("notify trigger requires a subject")
	}
	return t, nil
}

// OnStart connects to the NATS server.
func (t *NotifyTrigger) OnStart(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		return nil
	}

	conn, err := nats.Connect(t.url,
		nats.Name("pacforge-"+t.repository.String()),
		nats.Timeout(connectTimeout),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to connect to NATS"), "url", t.url)
	}

	if t.jetstream {
		js, err := jetstream.New(conn)
		if err != nil {
			conn.Close()
			return zerr.Wrap(err, "failed to create JetStream context")
		}
		t.js = js
	}
	t.conn = conn
	return nil
}

// OnResult publishes the summary of result.
func (t *NotifyTrigger) OnResult(ctx context.Context, result *domain.Result, _ []domain.Package) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return zerr.New("notify trigger is not connected")
	}

	data, err := json.Marshal(NewMessage(t.repository, result, time.Now()))
	if err != nil {
		return zerr.Wrap(err, "failed to encode notification")
	}

	if t.js != nil {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if _, err := t.js.Publish(ctx, t.subject, data); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to publish notification"), "subject", t.subject)
		}
		return nil
	}

	if err := t.conn.Publish(t.subject, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to publish notification"), "subject", t.subject)
	}
	if err := t.conn.FlushTimeout(publishTimeout); err != nil {
		return zerr.Wrap(err, "failed to flush notification")
	}
	return nil
}

// OnStop drains the connection.
func (t *NotifyTrigger) OnStop(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	conn := t.conn
	t.conn = nil
	t.js = nil
	if err := conn.Drain(); err != nil {
		return zerr.Wrap(err, "failed to drain NATS connection")
	}
	return nil
}

// NewMessage builds the notification for result.
func NewMessage(repository domain.RepositoryID, result *domain.Result, now time.Time) Message {
	return Message{
		Repository:   repository.Name,
		Architecture: repository.Architecture,
		Updated:      domain.Bases(result.Success()),
		Failed:       domain.Bases(result.Failed()),
		Timestamp:    now.UTC(),
	}
}
