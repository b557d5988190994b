package handler

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/metrics"
	"jenny-wellness/internal/questionnaire"
	"jenny-wellness/internal/relay"
)

// Лимит памяти на разбор multipart формы; остальное уходит во временные файлы
const maxMultipartMemory = 32 << 20

// Relay — пересылка анкеты во внешний чат. Реализуется relay.Service.
type Relay interface {
	Deliver(ctx context.Context, sub *questionnaire.Submission) (*relay.DeliveryResult, error)
}

// SubmitHandler принимает отправки анкет
type SubmitHandler struct {
	cfg     *config.AppConfig
	schemas *config.QuestionnairesConfig
	relay   Relay
	metrics *metrics.Metrics
}

func NewSubmitHandler(cfg *config.AppConfig, schemas *config.QuestionnairesConfig, r Relay, m *metrics.Metrics) *SubmitHandler {
	return &SubmitHandler{cfg: cfg, schemas: schemas, relay: r, metrics: m}
}

// Submit обрабатывает POST /api/submit: разбирает multipart форму,
// проверяет обязательные поля и передает анкету в пересылку.
// Никакие данные анкеты на сервере не сохраняются.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	typ := r.FormValue("type")
	locale := r.FormValue("locale")
	dataJSON := r.FormValue("data")

	if typ == "" || locale == "" || dataJSON == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	answers, err := questionnaire.ParseAnswers([]byte(dataJSON))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	// Без секретов Telegram отправлять некуда: 500, внешних вызовов нет
	if !h.cfg.TelegramConfigured() {
		log.Printf("submit: не заданы TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID")
		writeError(w, http.StatusInternalServerError, "Telegram credentials not configured")
		return
	}

	sub := &questionnaire.Submission{
		ID:          uuid.New().String(),
		Type:        questionnaire.Normalize(typ),
		Locale:      locale,
		Answers:     answers,
		Attachments: h.extractAttachments(r),
	}

	h.metrics.IncrementSubmissionsReceived()
	log.Printf("submit: анкета %s тип=%s локаль=%s полей=%d файлов=%d",
		sub.ID, sub.Type, sub.Locale, len(sub.Answers), len(sub.Attachments))

	// Клиент валидирует форму до отправки; здесь нарушения схемы
	// только логируются, запрос из-за них не отклоняется
	if schema, ok := h.schemas.Get(sub.Type); ok {
		if issues := questionnaire.Validate(schema, answers); !issues.Empty() {
			log.Printf("submit: анкета %s: %s", sub.ID, issues)
		}
	}

	result, err := h.relay.Deliver(r.Context(), sub)
	if err != nil {
		h.metrics.IncrementSubmissionsFailed()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Success() {
		h.metrics.IncrementSubmissionsFailed()
		writeJSON(w, http.StatusInternalServerError, SubmitResponse{
			Success:          false,
			Error:            result.ErrorText(),
			AttachmentErrors: result.ErrorMessages(),
		})
		return
	}

	h.metrics.IncrementSubmissionsDelivered()
	writeJSON(w, http.StatusOK, SubmitResponse{Success: true})
}

// extractAttachments собирает файлы по позиционным ключам file_<i>.
// Отсутствующие и пустые части пропускаются без ошибки; для частей без
// имени подставляется синтетическое.
func (h *SubmitHandler) extractAttachments(r *http.Request) []questionnaire.Attachment {
	fileCount, err := strconv.Atoi(r.FormValue("fileCount"))
	if err != nil || fileCount <= 0 {
		return nil
	}

	var attachments []questionnaire.Attachment
	for i := 0; i < fileCount; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("file_%d", i))
		if err != nil {
			continue
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Printf("submit: ошибка чтения файла file_%d: %v", i, err)
			continue
		}
		if len(data) == 0 {
			continue
		}

		filename := header.Filename
		if filename == "" {
			filename = fmt.Sprintf("file_%d", i+1)
		}

		attachments = append(attachments, questionnaire.Attachment{
			Filename:    filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return attachments
}
