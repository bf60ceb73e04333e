package handler

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// publishMailMessage 把郵件內容序列化後送進 email_queue，由 mail worker 負責寄送。
func (h *Handler) publishMailMessage(mailMessage domain.MailMessage) error {
	data, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
}
