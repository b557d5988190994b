package questionnaire

import (
	"fmt"
	"strings"

	"jenny-wellness/internal/config"
)

// ValidationIssues перечисляет нарушения схемы анкеты. Клиент валидирует
// форму до отправки, поэтому на сервере нарушения только логируются —
// запрос из-за них не отклоняется.
type ValidationIssues struct {
	Missing   []string
	NoConsent bool
}

// Empty сообщает, что нарушений нет
func (v *ValidationIssues) Empty() bool {
	return len(v.Missing) == 0 && !v.NoConsent
}

func (v *ValidationIssues) String() string {
	var parts []string
	if len(v.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("не заполнены обязательные поля: %s", strings.Join(v.Missing, ", ")))
	}
	if v.NoConsent {
		parts = append(parts, "нет согласия на обработку данных")
	}
	return strings.Join(parts, "; ")
}

// Validate сверяет ответы со схемой варианта анкеты
func Validate(schema *config.Questionnaire, answers Answers) *ValidationIssues {
	issues := &ValidationIssues{}

	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}

		value, ok := answers.Get(f.Name)
		if !ok {
			issues.Missing = append(issues.Missing, f.Name)
			continue
		}

		switch f.Kind {
		case "consent":
			b, isBool := value.(bool)
			if !isBool || !b {
				issues.NoConsent = true
			}
		case "files":
			// наличие файлов проверяется по частям multipart, не по ответам
		default:
			if s, isStr := value.(string); isStr && strings.TrimSpace(s) == "" {
				issues.Missing = append(issues.Missing, f.Name)
			}
		}
	}

	return issues
}
