package service

import (
	"context"
	"encoding/json"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService delivers welcome mails queued by signup.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always acks. Mail is best effort and a failed send is not retried.
func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.WelcomeEmailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error(logger.Errors, "Failed to unmarshal welcome email message", map[string]interface{}{
			"error":      err,
			"message_id": msg.UUID,
		})
		return
	}

	if err := cs.emailService.SendWelcome(payload.Email, payload.Password); err != nil {
		cs.log.Error(logger.Errors, "Failed to send welcome email", map[string]interface{}{
			"error":   err,
			"context": "email",
		})
		return
	}

	cs.log.Info(logger.Business, "Welcome email sent", map[string]interface{}{
		"message_id": msg.UUID,
	})
}
