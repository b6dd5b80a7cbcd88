/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Blawness/pkp-studio/internal/bootstrap"
	"github.com/Blawness/pkp-studio/internal/config"
	"github.com/Blawness/pkp-studio/internal/infra/messaging"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var consumerCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Run a JetStream consumer for activity events",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		log, err := bootstrap.BuildLogger(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "log error:", err)
			os.Exit(1)
		}

		client, err := messaging.NewNATS(cmd.Context(), cfg.NATS)
		if err != nil {
			fmt.Fprintln(os.Stderr, "nats error:", err)
			os.Exit(1)
		}
		if client == nil {
			fmt.Fprintln(os.Stderr, "nats error: nats url is required")
			os.Exit(1)
		}
		defer client.Close()

		js := client.JetStream()
		if js == nil {
			fmt.Fprintln(os.Stderr, "nats error: jetstream not initialized")
			os.Exit(1)
		}

		if err := ensureConsumer(cmd.Context(), cfg, js); err != nil {
			fmt.Fprintln(os.Stderr, "consumer config error:", err)
			os.Exit(1)
		}

		filter := cfg.NATS.ActivitySubject + ".>"
		log.Infof("consumer: listening on %s (durable=%s)", filter, cfg.NATS.ConsumerDurable)
		sub, err := js.PullSubscribe(
			filter,
			cfg.NATS.ConsumerDurable,
			nats.Bind(cfg.NATS.Stream, cfg.NATS.ConsumerDurable),
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "subscribe error:", err)
			os.Exit(1)
		}

		for {
			select {
			case <-cmd.Context().Done():
				return
			default:
			}

			msgs, err := sub.Fetch(50, nats.MaxWait(2*time.Second))
			if err != nil {
				if errors.Is(err, nats.ErrTimeout) {
					continue
				}
				log.WithError(err).Warn("consumer: fetch failed")
				continue
			}
			for _, msg := range msgs {
				event, err := decodeActivityEvent(msg.Data)
				if err != nil {
					log.WithError(err).Warn("consumer: bad activity payload")
					handleConsumerError(cmd.Context(), cfg, client, msg, log)
					continue
				}
				log.WithFields(logrus.Fields{
					"subject": msg.Subject,
					"action":  event.Action,
					"user":    event.User,
				}).Info(event.Details)
				_ = msg.Ack()
			}
		}
	},
}

type consumedEvent struct {
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

func decodeActivityEvent(data []byte) (consumedEvent, error) {
	var event consumedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return consumedEvent{}, err
	}
	if event.Action == "" {
		return consumedEvent{}, errors.New("activity event missing action")
	}
	return event, nil
}

func init() {
	rootCmd.AddCommand(consumerCmd)
}

func ensureConsumer(ctx context.Context, cfg config.Config, js nats.JetStreamContext) error {
	if cfg.NATS.Stream == "" {
		return errors.New("nats stream is required")
	}
	if cfg.NATS.ConsumerDurable == "" {
		return errors.New("nats consumer durable is required")
	}
	if cfg.NATS.ActivitySubject == "" {
		return errors.New("nats activity subject is required")
	}

	info, err := js.ConsumerInfo(cfg.NATS.Stream, cfg.NATS.ConsumerDurable, nats.Context(ctx))
	if err != nil && !errors.Is(err, nats.ErrConsumerNotFound) {
		return err
	}

	backoff := cfg.NATS.ConsumerBackoff
	maxDeliver := cfg.NATS.ConsumerMaxDeliver
	if maxDeliver <= 0 {
		maxDeliver = -1
	}

	if info != nil {
		if info.Config.MaxDeliver != maxDeliver || !sameBackoff(info.Config.BackOff, backoff) {
			if err := js.DeleteConsumer(cfg.NATS.Stream, cfg.NATS.ConsumerDurable, nats.Context(ctx)); err != nil {
				return err
			}
			info = nil
		}
	}

	if info == nil {
		consumerCfg := &nats.ConsumerConfig{
			Durable:       cfg.NATS.ConsumerDurable,
			AckPolicy:     nats.AckExplicitPolicy,
			AckWait:       cfg.NATS.AckWait,
			MaxAckPending: cfg.NATS.MaxAckPending,
			MaxDeliver:    maxDeliver,
			FilterSubject: cfg.NATS.ActivitySubject + ".>",
		}
		if len(backoff) > 0 {
			consumerCfg.BackOff = backoff
		}
		if _, err := js.AddConsumer(cfg.NATS.Stream, consumerCfg, nats.Context(ctx)); err != nil {
			return err
		}
	}
	return nil
}

func sameBackoff(a, b []time.Duration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func handleConsumerError(ctx context.Context, cfg config.Config, client *messaging.NATSClient, msg *nats.Msg, log *logrus.Logger) {
	md, err := msg.Metadata()
	if err != nil {
		log.WithError(err).Warn("consumer: metadata missing")
		_ = msg.Nak()
		return
	}
	maxDeliver := cfg.NATS.ConsumerMaxDeliver
	if maxDeliver <= 0 {
		maxDeliver = 10
	}
	if int(md.NumDelivered) >= maxDeliver {
		if cfg.NATS.DLQSubject != "" {
			if err := client.Publish(ctx, cfg.NATS.DLQSubject, msg.Data, fmt.Sprintf("dlq-%d", md.Sequence.Stream)); err != nil {
				log.WithError(err).Warn("consumer: dlq publish failed")
				_ = msg.Nak()
				return
			}
		} else {
			log.Warn("consumer: dlq subject not configured")
		}
		_ = msg.Ack()
		return
	}
	delay := backoffForAttempt(cfg.NATS.ConsumerBackoff, md.NumDelivered)
	if delay > 0 {
		_ = msg.NakWithDelay(delay)
		return
	}
	_ = msg.Nak()
}

func backoffForAttempt(backoff []time.Duration, delivered uint64) time.Duration {
	if len(backoff) == 0 {
		return 0
	}
	idx := int(delivered) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(backoff) {
		idx = len(backoff) - 1
	}
	return backoff[idx]
}
