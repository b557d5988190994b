package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"jenny-wellness/internal/questionnaire"
)

// New создает нового клиента Telegram Bot API
func New(token, chatID string, attachmentTimeout time.Duration, debug bool) *Bot {
	return &Bot{
		token:             token,
		chatID:            chatID,
		baseURL:           fmt.Sprintf("https://api.telegram.org/bot%s", token),
		client:            &http.Client{},
		attachmentTimeout: attachmentTimeout,
		debug:             debug,
	}
}

// SendMessage отправляет текстовое сообщение в настроенный чат.
// Сообщение уходит с parse_mode HTML, поэтому текст обязан быть
// экранирован до вызова.
func (b *Bot) SendMessage(ctx context.Context, text string) error {
	request := SendMessageRequest{
		ChatID:    b.chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := fmt.Sprintf("%s/sendMessage", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка отправки сообщения: %w", err)
	}
	defer resp.Body.Close()

	return b.parseResponse(resp, "sendMessage")
}

// SendAttachment отправляет одно вложение, выбирая метод API по типу
// файла. Для видео и документов добавляется подпись с именем файла.
// Вызов ограничен по времени, чтобы большой файл не повесил отправку.
func (b *Bot) SendAttachment(ctx context.Context, att questionnaire.Attachment) error {
	kind := Classify(att.ContentType, att.Filename)

	body, contentType, err := b.buildAttachmentForm(kind, att)
	if err != nil {
		return fmt.Errorf("ошибка сборки формы для %s: %w", att.Filename, err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.attachmentTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", b.baseURL, kind.Method())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	if b.debug {
		log.Printf("telegram: %s файл=%s размер=%d тип=%s", kind.Method(), att.Filename, len(att.Data), att.ContentType)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{Filename: att.Filename, Limit: b.attachmentTimeout}
		}
		return fmt.Errorf("ошибка отправки файла %s: %w", att.Filename, err)
	}
	defer resp.Body.Close()

	err = b.parseResponse(resp, kind.Method())
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Filename: att.Filename, Limit: b.attachmentTimeout}
	}
	return err
}

// buildAttachmentForm собирает multipart тело запроса на отправку файла
func (b *Bot) buildAttachmentForm(kind Kind, att questionnaire.Attachment) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	err := writer.WriteField("chat_id", b.chatID)
	if err != nil {
		return nil, "", err
	}

	if kind.WantsCaption() {
		err = writer.WriteField("caption", fmt.Sprintf("📎 %s", att.Filename))
		if err != nil {
			return nil, "", err
		}
	}

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// CreateFormFile всегда ставит application/octet-stream,
	// а Telegram для sendPhoto хочет настоящий тип картинки
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		kind.Field(), escapeQuotes(att.Filename)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	_, err = part.Write(att.Data)
	if err != nil {
		return nil, "", err
	}

	err = writer.Close()
	if err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

// parseResponse читает и проверяет ответ Bot API
func (b *Bot) parseResponse(resp *http.Response, method string) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if b.debug {
		log.Printf("telegram: %s статус=%d ответ=%s", method, resp.StatusCode, respBody)
	}

	var apiResp APIResponse
	err = json.Unmarshal(respBody, &apiResp)
	if err != nil {
		return fmt.Errorf("ошибка парсинга ответа %s (статус %d): %w", method, resp.StatusCode, err)
	}

	if !apiResp.OK {
		return &APIError{
			Method:      method,
			ErrorCode:   apiResp.ErrorCode,
			Description: apiResp.Description,
		}
	}

	return nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
