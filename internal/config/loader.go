package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Канонические ключи вариантов анкет
var knownKeys = map[string]bool{
	"women":  true,
	"men":    true,
	"infant": true,
	"child":  true,
}

// LoadQuestionnaires загружает описания анкет из YAML файла
func LoadQuestionnaires(filename string) (*QuestionnairesConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var config QuestionnairesConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateQuestionnaires(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// validateQuestionnaires проверяет корректность описаний анкет
func validateQuestionnaires(config *QuestionnairesConfig) error {
	if len(config.Questionnaires) == 0 {
		return fmt.Errorf("не задано ни одной анкеты")
	}

	seen := make(map[string]bool)
	for i, q := range config.Questionnaires {
		if q.Key == "" {
			return fmt.Errorf("анкета %d должна иметь key", i)
		}

		if !knownKeys[q.Key] {
			return fmt.Errorf("анкета %q: неизвестный ключ", q.Key)
		}

		if seen[q.Key] {
			return fmt.Errorf("анкета %q задана повторно", q.Key)
		}
		seen[q.Key] = true

		if len(q.Fields) == 0 {
			return fmt.Errorf("анкета %q не содержит полей", q.Key)
		}

		fieldSeen := make(map[string]bool)
		hasConsent := false
		for _, f := range q.Fields {
			if f.Name == "" {
				return fmt.Errorf("анкета %q: поле без имени", q.Key)
			}
			if fieldSeen[f.Name] {
				return fmt.Errorf("анкета %q: поле %q задано повторно", q.Key, f.Name)
			}
			fieldSeen[f.Name] = true

			switch f.Kind {
			case "", "text", "number", "textarea", "consent", "files":
			default:
				return fmt.Errorf("анкета %q: поле %q имеет неизвестный kind %q", q.Key, f.Name, f.Kind)
			}

			if f.Kind == "consent" {
				hasConsent = true
			}
		}

		if !hasConsent {
			return fmt.Errorf("анкета %q не содержит поля согласия", q.Key)
		}
	}

	return nil
}
