package notify

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/medrota/rotagap/core/metrics"
	"github.com/medrota/rotagap/infra/logger"
)

// Config defines the MQTT alert publisher settings.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Topic    string `json:"topic"`
	Username string `json:"username"`
	Password string `json:"password"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "rotagap-notifier"
	}
	if c.Topic == "" {
		c.Topic = "rotagap/coverage"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required when notify is enabled")
	}
	return nil
}

// CoverageAlert is the JSON payload published for a coverage check.
type CoverageAlert struct {
	RunID    string    `json:"run_id"`
	Month    string    `json:"month"`
	Unfilled []string  `json:"unfilled"`
	Time     time.Time `json:"time"`
}

type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher sends coverage alerts to an MQTT broker.
type Publisher struct {
	cli   pahoClient
	topic string
	qos   byte
	log   logger.Logger
}

// NewPublisher connects to the broker and returns a Publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logg := logger.New("notify")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		logg.Errorf("connection lost: %v", err)
	}
	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{cli: cli, topic: cfg.Topic, qos: cfg.QoS, log: logg}, nil
}

// PublishCoverage publishes the coverage event as a JSON alert.
func (p *Publisher) PublishCoverage(ev coremetrics.CoverageEvent) error {
	alert := CoverageAlert{RunID: ev.RunID, Month: ev.Month, Unfilled: ev.Unfilled, Time: ev.Time}
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	token := p.cli.Publish(p.topic, p.qos, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish alert: %w", token.Error())
	}
	p.log.Infof("published coverage alert for %s (%d unfilled)", ev.Month, len(ev.Unfilled))
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() { p.cli.Disconnect(250) }
