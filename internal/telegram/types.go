package telegram

import (
	"fmt"
	"net/http"
	"time"
)

// Bot представляет клиент Telegram Bot API
type Bot struct {
	token             string
	chatID            string
	baseURL           string
	client            *http.Client
	attachmentTimeout time.Duration
	debug             bool
}

// SendMessageRequest представляет запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse представляет общий ответ Telegram Bot API
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// TimeoutError — отправка файла не уложилась в лимит времени.
// Отличим от отказа самого API: при повторе файл может уйти.
type TimeoutError struct {
	Filename string
	Limit    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("таймаут отправки файла %s (лимит %s)", e.Filename, e.Limit)
}

// APIError — Telegram API отверг запрос
type APIError struct {
	Method      string
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("Telegram API вернул ошибку на %s: %s", e.Method, e.Description)
	}
	return fmt.Sprintf("Telegram API вернул ошибку на %s (код %d)", e.Method, e.ErrorCode)
}
