package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/metrics"
	"jenny-wellness/internal/questionnaire"
	"jenny-wellness/internal/relay"
)

// fakeRelay записывает вызовы и отдает заранее заданный результат
type fakeRelay struct {
	result  *relay.DeliveryResult
	err     error
	calls   int
	lastSub *questionnaire.Submission
}

func (f *fakeRelay) Deliver(ctx context.Context, sub *questionnaire.Submission) (*relay.DeliveryResult, error) {
	f.calls++
	f.lastSub = sub
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &relay.DeliveryResult{MessageSent: true}, nil
}

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Telegram: config.TelegramConfig{Token: "test-token", ChatID: "-100500"},
	}
}

func testSchemas() *config.QuestionnairesConfig {
	return &config.QuestionnairesConfig{
		Questionnaires: []config.Questionnaire{
			{
				Key: "women",
				Fields: []config.Field{
					{Name: "firstName", Required: true, Personal: true},
					{Name: "gdprConsent", Kind: "consent", Required: true},
				},
			},
		},
	}
}

type testFile struct {
	part        string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, fields map[string]string, files []testFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		err := writer.WriteField(key, value)
		if err != nil {
			t.Fatal(err)
		}
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.part, f.filename))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		_, err = part.Write(f.data)
		if err != nil {
			t.Fatal(err)
		}
	}

	err := writer.Close()
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func doSubmit(t *testing.T, h *SubmitHandler, req *http.Request) (int, SubmitResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	var resp SubmitResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		t.Fatalf("ответ не JSON: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, resp
}

func validFields() map[string]string {
	return map[string]string{
		"type":   "women",
		"locale": "ru",
		"data":   `{"firstName":"Анна","gdprConsent":true}`,
	}
}

func TestSubmitMissingFields(t *testing.T) {
	for _, missing := range []string{"type", "locale", "data"} {
		t.Run(missing, func(t *testing.T) {
			fr := &fakeRelay{}
			h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

			fields := validFields()
			delete(fields, missing)

			code, resp := doSubmit(t, h, multipartRequest(t, fields, nil))
			if code != http.StatusBadRequest {
				t.Errorf("код = %d, ожидался 400", code)
			}
			if resp.Error != "Missing required fields" {
				t.Errorf("error = %q", resp.Error)
			}
			// внешних вызовов быть не должно
			if fr.calls != 0 {
				t.Errorf("пересылка вызывалась %d раз", fr.calls)
			}
		})
	}
}

func TestSubmitInvalidJSON(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	fields := validFields()
	fields["data"] = `{broken`

	code, resp := doSubmit(t, h, multipartRequest(t, fields, nil))
	if code != http.StatusBadRequest {
		t.Errorf("код = %d, ожидался 400", code)
	}
	if resp.Error != "Invalid JSON data" {
		t.Errorf("error = %q", resp.Error)
	}
	if fr.calls != 0 {
		t.Errorf("пересылка вызывалась %d раз", fr.calls)
	}
}

func TestSubmitMissingCredentials(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(&config.AppConfig{}, testSchemas(), fr, metrics.NewMetrics())

	code, resp := doSubmit(t, h, multipartRequest(t, validFields(), nil))
	if code != http.StatusInternalServerError {
		t.Errorf("код = %d, ожидался 500", code)
	}
	if resp.Error != "Telegram credentials not configured" {
		t.Errorf("error = %q", resp.Error)
	}
	if fr.calls != 0 {
		t.Errorf("пересылка вызывалась %d раз", fr.calls)
	}
}

func TestSubmitSuccess(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	code, resp := doSubmit(t, h, multipartRequest(t, validFields(), nil))
	if code != http.StatusOK {
		t.Errorf("код = %d, ожидался 200", code)
	}
	if !resp.Success {
		t.Errorf("success = false, error = %q", resp.Error)
	}
	if fr.calls != 1 {
		t.Errorf("пересылка вызывалась %d раз", fr.calls)
	}
	if fr.lastSub.ID == "" {
		t.Error("анкета без идентификатора")
	}
}

func TestSubmitNormalizesType(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	fields := validFields()
	fields["type"] = "Women's Questionnaire"
	fields["locale"] = "en"

	code, _ := doSubmit(t, h, multipartRequest(t, fields, nil))
	if code != http.StatusOK {
		t.Fatalf("код = %d", code)
	}
	if fr.lastSub.Type != "women" {
		t.Errorf("тип = %q, ожидался канонический ключ women", fr.lastSub.Type)
	}
}

func TestSubmitExtractsAttachments(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	fields := validFields()
	fields["fileCount"] = "3"

	// file_1 пустой, file_2 отсутствует — оба пропускаются без ошибки
	files := []testFile{
		{part: "file_0", filename: "scan.png", contentType: "image/png", data: []byte("png-data")},
		{part: "file_1", filename: "empty.pdf", contentType: "application/pdf", data: nil},
	}

	code, resp := doSubmit(t, h, multipartRequest(t, fields, files))
	if code != http.StatusOK {
		t.Fatalf("код = %d, error = %q", code, resp.Error)
	}

	atts := fr.lastSub.Attachments
	if len(atts) != 1 {
		t.Fatalf("вложений = %d, ожидалось 1", len(atts))
	}
	if atts[0].Filename != "scan.png" || atts[0].ContentType != "image/png" {
		t.Errorf("вложение = %+v", atts[0])
	}
}

func TestSubmitBadFileCount(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	fields := validFields()
	fields["fileCount"] = "не число"

	code, _ := doSubmit(t, h, multipartRequest(t, fields, nil))
	if code != http.StatusOK {
		t.Fatalf("код = %d", code)
	}
	if len(fr.lastSub.Attachments) != 0 {
		t.Errorf("вложений = %d", len(fr.lastSub.Attachments))
	}
}

func TestSubmitMessageFailure(t *testing.T) {
	fr := &fakeRelay{err: &relay.UpstreamMessageError{Err: errors.New("chat not found")}}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	code, resp := doSubmit(t, h, multipartRequest(t, validFields(), nil))
	if code != http.StatusInternalServerError {
		t.Errorf("код = %d, ожидался 500", code)
	}
	if !strings.Contains(resp.Error, "Failed to send message") {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestSubmitAttachmentFailures(t *testing.T) {
	fr := &fakeRelay{
		result: &relay.DeliveryResult{
			MessageSent: true,
			Attachments: []relay.AttachmentResult{
				{Filename: "ok.pdf", Success: true},
				{Filename: "bad.pdf", Success: false, Error: "Failed to send file bad.pdf: too big"},
			},
		},
	}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	fields := validFields()
	fields["fileCount"] = "2"
	files := []testFile{
		{part: "file_0", filename: "ok.pdf", contentType: "application/pdf", data: []byte("a")},
		{part: "file_1", filename: "bad.pdf", contentType: "application/pdf", data: []byte("b")},
	}

	code, resp := doSubmit(t, h, multipartRequest(t, fields, files))
	if code != http.StatusInternalServerError {
		t.Errorf("код = %d, ожидался 500", code)
	}
	if resp.Success {
		t.Error("success = true при недоставленных файлах")
	}
	if !strings.Contains(resp.Error, "bad.pdf") {
		t.Errorf("ошибка не называет файл: %q", resp.Error)
	}
	if len(resp.AttachmentErrors) != 1 || !strings.Contains(resp.AttachmentErrors[0], "bad.pdf") {
		t.Errorf("attachmentErrors = %v", resp.AttachmentErrors)
	}
}

func TestSubmitNotMultipart(t *testing.T) {
	fr := &fakeRelay{}
	h := NewSubmitHandler(testAppConfig(), testSchemas(), fr, metrics.NewMetrics())

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"type":"women"}`))
	req.Header.Set("Content-Type", "application/json")

	code, resp := doSubmit(t, h, req)
	if code != http.StatusBadRequest {
		t.Errorf("код = %d, ожидался 400", code)
	}
	if resp.Success {
		t.Error("success = true")
	}
}
