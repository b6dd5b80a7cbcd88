package messaging

import (
	"context"
	"errors"

	"github.com/Blawness/pkp-studio/internal/config"
	"github.com/nats-io/nats.go"
)

type NATSClient struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	cfg  config.NATS
}

func NewNATS(ctx context.Context, cfg config.NATS) (*NATSClient, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	if cfg.Stream == "" || cfg.ActivitySubject == "" {
		return nil, errors.New("nats: stream and activity_subject are required")
	}

	conn, err := nats.Connect(cfg.URL, nats.Name("pkp-studio"))
	if err != nil {
		return nil, err
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ensureStream(ctx, js, cfg); err != nil {
		conn.Close()
		return nil, err
	}

	return &NATSClient{conn: conn, js: js, cfg: cfg}, nil
}

func (c *NATSClient) Close() {
	if c == nil || c.conn == nil {
		return
	}
	c.conn.Close()
}

func (c *NATSClient) JetStream() nats.JetStreamContext {
	if c == nil {
		return nil
	}
	return c.js
}

// ActivitySubject returns the publish subject for an event type, e.g.
// "activity.events.certificate.created".
func (c *NATSClient) ActivitySubject(eventType string) string {
	return c.cfg.ActivitySubject + "." + eventType
}

func (c *NATSClient) Publish(ctx context.Context, subject string, payload []byte, msgID string) error {
	if c == nil {
		return nil
	}
	if c.js == nil {
		return errors.New("nats: jetstream not initialized")
	}
	msg := nats.NewMsg(subject)
	msg.Data = payload
	if msgID != "" {
		msg.Header.Set(nats.MsgIdHdr, msgID)
	}
	_, err := c.js.PublishMsg(msg, nats.Context(ctx))
	return err
}

func ensureStream(ctx context.Context, js nats.JetStreamContext, cfg config.NATS) error {
	subjects := []string{cfg.ActivitySubject + ".>"}
	if cfg.DLQSubject != "" {
		subjects = append(subjects, cfg.DLQSubject)
	}

	info, err := js.StreamInfo(cfg.Stream, nats.Context(ctx))
	if err == nil {
		if !sameSubjects(info.Config.Subjects, subjects) {
			info.Config.Subjects = subjects
			_, err = js.UpdateStream(&info.Config, nats.Context(ctx))
		}
		return err
	}

	if errors.Is(err, nats.ErrStreamNotFound) {
		_, err = js.AddStream(&nats.StreamConfig{
			Name:      cfg.Stream,
			Subjects:  subjects,
			Storage:   nats.FileStorage,
			Retention: nats.LimitsPolicy,
		}, nats.Context(ctx))
		return err
	}
	return err
}

func sameSubjects(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	for _, v := range seen {
		if v != 0 {
			return false
		}
	}
	return true
}
