package questionnaire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer представляет одно поле анкеты с ответом.
// Value — string, bool, float64, []any или map[string]any (как в JSON).
type Answer struct {
	Key   string
	Value any
}

// Answers — ответы анкеты в порядке, в котором их прислал клиент.
// Обычный map порядок не сохраняет, а для детерминированного текста
// сообщения порядок полей важен, поэтому парсим токенами.
type Answers []Answer

// ParseAnswers разбирает JSON объект с ответами, сохраняя порядок ключей
func ParseAnswers(data []byte) (Answers, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("ожидался JSON объект, получен %v", tok)
	}

	var answers Answers
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора ключа: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("ожидался строковый ключ, получен %v", keyTok)
		}

		var value any
		err = dec.Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора значения поля %q: %w", key, err)
		}

		answers = append(answers, Answer{Key: key, Value: value})
	}

	_, err = dec.Token()
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора JSON: %w", err)
	}

	return answers, nil
}

// Get возвращает значение поля по имени
func (a Answers) Get(key string) (any, bool) {
	for _, ans := range a {
		if ans.Key == key {
			return ans.Value, true
		}
	}
	return nil, false
}

// Keys возвращает имена полей в исходном порядке
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for _, ans := range a {
		keys = append(keys, ans.Key)
	}
	return keys
}
