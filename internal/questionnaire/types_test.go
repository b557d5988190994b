package questionnaire

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		// канонические ключи проходят без изменений
		{"women", "women"},
		{"men", "men"},
		{"infant", "infant"},
		{"child", "child"},
		// полные локализованные названия от старых клиентов
		{"Женская анкета", "women"},
		{"Women's Questionnaire", "women"},
		{"Мужская анкета", "men"},
		{"Men's Questionnaire", "men"},
		{"Анкета для младенца", "infant"},
		{"Infant Questionnaire", "infant"},
		{"Детская анкета", "child"},
		{"Children's Questionnaire", "child"},
		// пробелы по краям не мешают
		{"  women  ", "women"},
		// нераспознанные метки проходят как есть
		{"Анкета кота", "Анкета кота"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.label); got != tt.want {
			t.Errorf("Normalize(%q) = %q, ожидалось %q", tt.label, got, tt.want)
		}
	}
}

func TestKnownType(t *testing.T) {
	for _, key := range []string{"women", "men", "infant", "child"} {
		if !KnownType(key) {
			t.Errorf("KnownType(%q) = false", key)
		}
	}
	if KnownType("Женская анкета") {
		t.Error("KnownType должен принимать только канонические ключи")
	}
}
