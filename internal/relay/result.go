package relay

import (
	"fmt"
	"strings"
)

// AttachmentResult — итог отправки одного вложения
type AttachmentResult struct {
	Filename string
	Success  bool
	Timeout  bool
	Error    string
}

// DeliveryResult — итог отправки всей анкеты. Частичные отказы не
// спрятаны в поток управления, а собраны в явную структуру: сообщение
// ушло, а из вложений могла дойти только часть.
type DeliveryResult struct {
	MessageSent bool
	Attachments []AttachmentResult
}

// Failed возвращает вложения, которые доставить не удалось
func (r *DeliveryResult) Failed() []AttachmentResult {
	var failed []AttachmentResult
	for _, a := range r.Attachments {
		if !a.Success {
			failed = append(failed, a)
		}
	}
	return failed
}

// Success сообщает, дошла ли анкета целиком
func (r *DeliveryResult) Success() bool {
	return r.MessageSent && len(r.Failed()) == 0
}

// ErrorMessages возвращает тексты ошибок по каждому недоставленному файлу
func (r *DeliveryResult) ErrorMessages() []string {
	var msgs []string
	for _, a := range r.Failed() {
		msgs = append(msgs, a.Error)
	}
	return msgs
}

// ErrorText склеивает ошибки вложений в одну строку для пользователя.
// Анкета с недоставленными файлами считается неотправленной целиком,
// чтобы пользователь повторил отправку с файлами.
func (r *DeliveryResult) ErrorText() string {
	failed := r.Failed()
	if len(failed) == 0 {
		return ""
	}
	return fmt.Sprintf("Failed to send %d file(s): %s", len(failed), strings.Join(r.ErrorMessages(), "; "))
}
