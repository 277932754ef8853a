package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const EventSource string = "github.com/diwise/devcamper-api"

// Event is a topic message about a single bootcamp
type Event interface {
	messaging.TopicMessage
	EntityID() string
}

//go:generate moq -rm -out events_mock.go . EventSender

type EventSender interface {
	Send(ctx context.Context, event Event) error
}

type subscriber struct {
	endpoint string
	patterns []*regexp.Regexp
}

func (s subscriber) wants(entityID string) bool {
	if len(s.patterns) == 0 {
		return true
	}

	for _, p := range s.patterns {
		if p.MatchString(entityID) {
			return true
		}
	}

	return false
}

type eventSender struct {
	subscribers map[string][]subscriber
	messenger   messaging.MsgContext
}

// New creates an EventSender that posts cloud events to the subscribers in cfg and,
// when messenger is non nil, publishes every event on its topic as well.
func New(cfg *Config, messenger messaging.MsgContext) (EventSender, error) {
	e := &eventSender{
		subscribers: make(map[string][]subscriber),
		messenger:   messenger,
	}

	if cfg == nil {
		return e, nil
	}

	for _, n := range cfg.Notifications {
		for _, s := range n.Subscribers {
			sub := subscriber{endpoint: s.Endpoint}

			for _, info := range s.Information {
				for _, entity := range info.Entities {
					if entity.IDPattern == "" {
						continue
					}

					p, err := regexp.Compile(entity.IDPattern)
					if err != nil {
						return nil, fmt.Errorf("invalid idPattern for notification %s: %w", n.ID, err)
					}

					sub.patterns = append(sub.patterns, p)
				}
			}

			e.subscribers[n.Type] = append(e.subscribers[n.Type], sub)
		}
	}

	return e, nil
}

// EventType returns the cloud event type used for an event, such as devcamper.bootcamp.created
func EventType(event Event) string {
	return "devcamper." + event.TopicName()
}

func (e *eventSender) Send(ctx context.Context, event Event) error {
	logger := logging.GetFromContext(ctx)

	var errs []error

	if e.messenger != nil {
		err := e.messenger.PublishOnTopic(ctx, event)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to publish %s", event.TopicName())
			errs = append(errs, err)
		}
	}

	eventType := EventType(event)

	targets := []string{}
	for _, s := range e.subscribers[eventType] {
		if s.wants(event.EntityID()) {
			targets = append(targets, s.endpoint)
		}
	}

	if len(targets) == 0 {
		return errors.Join(errs...)
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	ce := cloudevents.NewEvent()
	ce.SetID(uuid.NewString())
	ce.SetTime(time.Now().UTC())
	ce.SetSource(EventSource)
	ce.SetType(eventType)
	ce.SetSubject(event.EntityID())

	err = ce.SetData(cloudevents.ApplicationJSON, event)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	for _, endpoint := range targets {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, endpoint)

		result := c.Send(ctxWithTarget, ce)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, result))
		}
	}

	return errors.Join(errs...)
}

type EntityInfo struct {
	IDPattern string `yaml:"idPattern"`
}

type RegistrationInfo struct {
	Entities []EntityInfo `yaml:"entities"`
}

type SubscriberConfig struct {
	Endpoint    string             `yaml:"endpoint"`
	Information []RegistrationInfo `yaml:"information"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
