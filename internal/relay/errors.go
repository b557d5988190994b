package relay

import "fmt"

// UpstreamMessageError — не удалось доставить обязательное текстовое
// сообщение. Фатально для всей отправки: вложения не отправляются.
type UpstreamMessageError struct {
	Err error
}

func (e *UpstreamMessageError) Error() string {
	return fmt.Sprintf("Failed to send message: %v", e.Err)
}

func (e *UpstreamMessageError) Unwrap() error {
	return e.Err
}

// AttachmentError — ошибка доставки одного вложения. Не прерывает
// отправку остальных, но попадает в итоговый отчёт.
type AttachmentError struct {
	Filename string
	Timeout  bool
	Err      error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("Failed to send file %s: %v", e.Filename, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}
