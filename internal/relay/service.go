package relay

import (
	"context"
	"errors"
	"log"
	"time"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/i18n"
	"jenny-wellness/internal/metrics"
	"jenny-wellness/internal/questionnaire"
	"jenny-wellness/internal/telegram"
)

// Sender — внешний API доставки. Реализуется telegram.Bot.
type Sender interface {
	SendMessage(ctx context.Context, text string) error
	SendAttachment(ctx context.Context, att questionnaire.Attachment) error
}

// Service пересылает анкеты во внешний чат
type Service struct {
	sender  Sender
	bundle  *i18n.Bundle
	schemas *config.QuestionnairesConfig
	metrics *metrics.Metrics
	delay   time.Duration
}

// New создает сервис пересылки
func New(sender Sender, bundle *i18n.Bundle, schemas *config.QuestionnairesConfig, m *metrics.Metrics, delay time.Duration) *Service {
	return &Service{
		sender:  sender,
		bundle:  bundle,
		schemas: schemas,
		metrics: m,
		delay:   delay,
	}
}

// Deliver отправляет анкету: сначала обязательное текстовое сообщение,
// затем вложения по одному в исходном порядке. Отказ по сообщению
// фатален — вложения не отправляются. Отказ по вложению записывается
// в результат, и отправка продолжается со следующего файла.
func (s *Service) Deliver(ctx context.Context, sub *questionnaire.Submission) (*DeliveryResult, error) {
	schema, _ := s.schemas.Get(sub.Type)
	text := FormatMessage(s.bundle, schema, sub, time.Now())

	err := s.sender.SendMessage(ctx, text)
	s.metrics.IncrementAPICall(err == nil)
	if err != nil {
		log.Printf("relay: анкета %s: сообщение не отправлено: %v", sub.ID, err)
		return nil, &UpstreamMessageError{Err: err}
	}

	result := &DeliveryResult{MessageSent: true}

	for i, att := range sub.Attachments {
		// пауза между файлами, чтобы не упереться в лимиты Bot API
		if i > 0 && s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
			}
		}

		err := s.sender.SendAttachment(ctx, att)
		s.metrics.IncrementAPICall(err == nil)
		s.metrics.IncrementAttachment(err == nil)

		if err != nil {
			var timeoutErr *telegram.TimeoutError
			attErr := &AttachmentError{
				Filename: att.Filename,
				Timeout:  errors.As(err, &timeoutErr),
				Err:      err,
			}
			log.Printf("relay: анкета %s: файл %d/%d (%s) не отправлен: %v",
				sub.ID, i+1, len(sub.Attachments), att.Filename, err)
			result.Attachments = append(result.Attachments, AttachmentResult{
				Filename: att.Filename,
				Success:  false,
				Timeout:  attErr.Timeout,
				Error:    attErr.Error(),
			})
			continue
		}

		log.Printf("relay: анкета %s: файл %d/%d (%s) отправлен",
			sub.ID, i+1, len(sub.Attachments), att.Filename)
		result.Attachments = append(result.Attachments, AttachmentResult{
			Filename: att.Filename,
			Success:  true,
		})
	}

	return result, nil
}
