package questionnaire

import "strings"

// Канонические ключи вариантов анкет
const (
	TypeWomen  = "women"
	TypeMen    = "men"
	TypeInfant = "infant"
	TypeChild  = "child"
)

// KnownType сообщает, является ли строка каноническим ключом
func KnownType(key string) bool {
	switch key {
	case TypeWomen, TypeMen, TypeInfant, TypeChild:
		return true
	}
	return false
}

// Исторические клиенты присылали вместо ключа полное локализованное
// название анкеты. Таблица оставлена для обратной совместимости.
var displayNames = map[string]string{
	"Женская анкета":           TypeWomen,
	"Women's Questionnaire":    TypeWomen,
	"Мужская анкета":           TypeMen,
	"Men's Questionnaire":      TypeMen,
	"Анкета для младенца":      TypeInfant,
	"Infant Questionnaire":     TypeInfant,
	"Детская анкета":           TypeChild,
	"Children's Questionnaire": TypeChild,
}

// Normalize приводит метку варианта анкеты к каноническому ключу.
// Нераспознанные метки возвращаются без изменений.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	if KnownType(label) {
		return label
	}
	if key, ok := displayNames[label]; ok {
		return key
	}
	return label
}

// Attachment представляет файл, приложенный к анкете
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission представляет одну отправку анкеты. Создаётся на время
// запроса и нигде не сохраняется.
type Submission struct {
	ID          string
	Type        string
	Locale      string
	Answers     Answers
	Attachments []Attachment
}
