package relay

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/i18n"
	"jenny-wellness/internal/questionnaire"
)

// Служебные поля анкеты, которые не попадают в текст сообщения
const (
	fieldFiles   = "files"
	fieldConsent = "gdprConsent"
)

// FormatMessage собирает HTML текст сообщения для чата консультанта.
// Сначала раздел личных данных без нумерации, затем вопросы со сквозной
// нумерацией. Поля идут в порядке схемы; отвеченные поля, которых в
// схеме нет, дописываются в конец раздела вопросов, чтобы ни один ответ
// не потерялся из-за неполной схемы.
func FormatMessage(bundle *i18n.Bundle, schema *config.Questionnaire, sub *questionnaire.Submission, now time.Time) string {
	locale := sub.Locale

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>📋 %s: %s</b>\n\n", bundle.T(locale, "message.new"), bundle.TypeName(locale, sub.Type))
	fmt.Fprintf(&sb, "<b>%s:</b> %s\n", bundle.T(locale, "message.language"), bundle.LocaleName(locale))
	fmt.Fprintf(&sb, "<b>%s:</b> %s\n", bundle.T(locale, "message.datetime"), bundle.FormatTime(locale, now))

	var order []string
	personal := map[string]bool{}
	if schema != nil {
		order = schema.FieldOrder()
		personal = schema.PersonalFields()
	}
	declared := make(map[string]bool, len(order))
	for _, name := range order {
		declared[name] = true
	}

	type line struct {
		label string
		value string
	}

	render := func(key string) (line, bool) {
		if key == fieldFiles || key == fieldConsent {
			return line{}, false
		}
		value, ok := sub.Answers.Get(key)
		if !ok || isEmpty(value) {
			return line{}, false
		}
		return line{
			label: bundle.FieldLabel(sub.Type, locale, key),
			value: escapeHTML(formatValue(bundle, locale, value)),
		}, true
	}

	var personalLines, questionLines []line

	for _, key := range order {
		l, ok := render(key)
		if !ok {
			continue
		}
		if personal[key] {
			personalLines = append(personalLines, l)
		} else {
			questionLines = append(questionLines, l)
		}
	}

	// Ответы, не объявленные в схеме (в порядке, в котором их прислали)
	for _, ans := range sub.Answers {
		if declared[ans.Key] {
			continue
		}
		l, ok := render(ans.Key)
		if !ok {
			continue
		}
		questionLines = append(questionLines, l)
	}

	if len(personalLines) > 0 {
		fmt.Fprintf(&sb, "\n<b>%s:</b>\n", bundle.T(locale, "message.personal"))
		for _, l := range personalLines {
			fmt.Fprintf(&sb, "<b>%s:</b> %s\n", l.label, l.value)
		}
	}

	if len(questionLines) > 0 {
		fmt.Fprintf(&sb, "\n<b>%s:</b>\n", bundle.T(locale, "message.questions"))
		for i, l := range questionLines {
			fmt.Fprintf(&sb, "%d. <b>%s:</b> %s\n", i+1, l.label, l.value)
		}
	}

	if len(sub.Attachments) > 0 {
		fmt.Fprintf(&sb, "\n<b>%s:</b> %d", bundle.T(locale, "message.files_attached"), len(sub.Attachments))
	}

	return sb.String()
}

// isEmpty повторяет правила пропуска исходного сайта: пустые строки,
// false и пустые списки в сообщение не попадают
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case []any:
		return len(val) == 0
	}
	return false
}

// formatValue приводит значение ответа к строке
func formatValue(bundle *i18n.Bundle, locale string, v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return bundle.YesNo(locale, val)
	case json.Number:
		return val.String()
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Сообщение уходит с parse_mode HTML: сырые <, > и & из ответов
// пользователя ломали бы разметку или отклонялись API
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
