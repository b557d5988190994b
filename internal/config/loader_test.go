package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questionnaires.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
questionnaires:
  - key: women
    fields:
      - { name: firstName, required: true, personal: true }
      - { name: mainProblem, kind: textarea, required: true }
      - { name: files, kind: files }
      - { name: gdprConsent, kind: consent, required: true }
`

func TestLoadQuestionnaires(t *testing.T) {
	cfg, err := LoadQuestionnaires(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadQuestionnaires: %v", err)
	}

	q, ok := cfg.Get("women")
	if !ok {
		t.Fatal("анкета women не найдена")
	}
	if len(q.Fields) != 4 {
		t.Fatalf("полей = %d, ожидалось 4", len(q.Fields))
	}

	order := q.FieldOrder()
	if order[0] != "firstName" || order[1] != "mainProblem" {
		t.Errorf("неверный порядок полей: %v", order)
	}

	personal := q.PersonalFields()
	if !personal["firstName"] || personal["mainProblem"] {
		t.Errorf("неверная классификация личных данных: %v", personal)
	}

	required := q.RequiredFields()
	if len(required) != 3 {
		t.Errorf("обязательных полей = %d, ожидалось 3", len(required))
	}
}

func TestLoadQuestionnairesMissingFile(t *testing.T) {
	_, err := LoadQuestionnaires(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("ожидалась ошибка для отсутствующего файла")
	}
}

func TestLoadQuestionnairesValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty",
			content: `questionnaires: []`,
			wantErr: "ни одной анкеты",
		},
		{
			name: "unknown key",
			content: `
questionnaires:
  - key: teens
    fields:
      - { name: firstName, required: true }
      - { name: gdprConsent, kind: consent, required: true }
`,
			wantErr: "неизвестный ключ",
		},
		{
			name: "duplicate key",
			content: `
questionnaires:
  - key: women
    fields:
      - { name: firstName }
      - { name: gdprConsent, kind: consent }
  - key: women
    fields:
      - { name: firstName }
      - { name: gdprConsent, kind: consent }
`,
			wantErr: "повторно",
		},
		{
			name: "no consent field",
			content: `
questionnaires:
  - key: men
    fields:
      - { name: firstName, required: true }
`,
			wantErr: "согласия",
		},
		{
			name: "unknown kind",
			content: `
questionnaires:
  - key: men
    fields:
      - { name: firstName, kind: dropdown }
      - { name: gdprConsent, kind: consent }
`,
			wantErr: "неизвестный kind",
		},
		{
			name: "duplicate field",
			content: `
questionnaires:
  - key: men
    fields:
      - { name: firstName }
      - { name: firstName }
      - { name: gdprConsent, kind: consent }
`,
			wantErr: "поле \"firstName\" задано повторно",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadQuestionnaires(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("ожидалась ошибка валидации")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ошибка %q не содержит %q", err, tt.wantErr)
			}
		})
	}
}
