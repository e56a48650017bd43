package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/config"
	"github.com/gibs11/robdronego/internal/service"
)

// RobisepBroker ingests robot telemetry published on robisep/{code}/state
// and updates fleet state. Malformed payloads are logged and skipped; the
// subscription never fails the message.
type RobisepBroker struct {
	robisepService service.RobisepService
	logger         *zap.Logger
}

func NewRobisepBroker(robisepService service.RobisepService, logger *zap.Logger) *RobisepBroker {
	return &RobisepBroker{
		robisepService: robisepService,
		logger:         logger,
	}
}

// stateMessage telemetry payload. Code may be omitted when it is already
// in the topic.
type stateMessage struct {
	Code   string `json:"code"`
	State  string `json:"state"`
	RoomID string `json:"roomId"`
}

// HandleMessage processes one telemetry message.
func (b *RobisepBroker) HandleMessage(topic string, payload []byte) error {
	var msg stateMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal telemetry: %w", err)
	}
	if msg.Code == "" {
		msg.Code = codeFromTopic(topic)
	}
	if msg.Code == "" || msg.State == "" {
		return fmt.Errorf("telemetry missing code or state (topic %q)", topic)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.robisepService.UpdateStateByCode(ctx, msg.Code, msg.State, msg.RoomID); err != nil {
		return fmt.Errorf("failed to apply telemetry for %q: %w", msg.Code, err)
	}

	b.logger.Debug("robisep telemetry applied",
		zap.String("code", msg.Code),
		zap.String("state", msg.State),
	)
	return nil
}

// codeFromTopic extracts the robot code from robisep/{code}/state.
func codeFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) == 3 && parts[0] == "robisep" && parts[2] == "state" {
		return parts[1]
	}
	return ""
}

// Start connects to the broker and subscribes. Returns the client so the
// caller can disconnect on shutdown.
func Start(cfg config.MQTTConfig, broker *RobisepBroker, logger *zap.Logger) (pahomqtt.Client, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(c pahomqtt.Client) {
		token := c.Subscribe(cfg.Topic, 1, func(_ pahomqtt.Client, m pahomqtt.Message) {
			if err := broker.HandleMessage(m.Topic(), m.Payload()); err != nil {
				logger.Warn("robisep telemetry dropped",
					zap.String("topic", m.Topic()), zap.Error(err))
			}
		})
		token.Wait()
		if token.Error() != nil {
			logger.Error("MQTT subscribe failed", zap.Error(token.Error()))
			return
		}
		logger.Info("MQTT subscribed", zap.String("topic", cfg.Topic))
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if token.Error() != nil {
		return nil, token.Error()
	}
	return client, nil
}
