package i18n

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLocale — локаль по умолчанию для сайта
const DefaultLocale = "ru"

// Load загружает словари локализации из YAML файла
func Load(filename string) (*Bundle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var bundle Bundle
	err = yaml.Unmarshal(data, &bundle)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	err = validateBundle(&bundle)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации локализации: %w", err)
	}

	return &bundle, nil
}

// validateBundle проверяет полноту словарей
func validateBundle(b *Bundle) error {
	for _, code := range []string{"ru", "en"} {
		loc, ok := b.Locales[code]
		if !ok {
			return fmt.Errorf("отсутствует локаль %q", code)
		}
		if loc.Name == "" {
			return fmt.Errorf("локаль %q должна иметь name", code)
		}
		if loc.Yes == "" || loc.No == "" {
			return fmt.Errorf("локаль %q должна иметь yes и no", code)
		}
		if loc.TimeFormat == "" {
			return fmt.Errorf("локаль %q должна иметь time_format", code)
		}
		if _, ok := b.Labels[code]; !ok {
			return fmt.Errorf("отсутствует таблица подписей для локали %q", code)
		}
	}
	return nil
}

// Supported сообщает, известна ли локаль
func (b *Bundle) Supported(code string) bool {
	_, ok := b.Locales[code]
	return ok
}

// resolve возвращает словарь локали; для неизвестных кодов — английский,
// как делает исходный сайт (всё, что не ru, показывается по-английски).
func (b *Bundle) resolve(code string) *Locale {
	if loc, ok := b.Locales[code]; ok {
		return loc
	}
	if loc, ok := b.Locales["en"]; ok {
		return loc
	}
	return b.Locales[DefaultLocale]
}

// T возвращает перевод UI ключа; неизвестный ключ возвращается как есть
func (b *Bundle) T(code, key string) string {
	if v, ok := b.resolve(code).UI[key]; ok {
		return v
	}
	return key
}

// LocaleName возвращает название языка на нём самом
func (b *Bundle) LocaleName(code string) string {
	return b.resolve(code).Name
}

// TypeName возвращает локализованное название варианта анкеты
func (b *Bundle) TypeName(code, typ string) string {
	if v, ok := b.resolve(code).Types[typ]; ok {
		return v
	}
	return typ
}

// YesNo возвращает локализованное «Да»/«Нет»
func (b *Bundle) YesNo(code string, v bool) string {
	loc := b.resolve(code)
	if v {
		return loc.Yes
	}
	return loc.No
}

// FormatTime форматирует время по конвенции локали
func (b *Bundle) FormatTime(code string, t time.Time) string {
	return t.Format(b.resolve(code).TimeFormat)
}

// FieldLabel возвращает подпись поля для варианта анкеты и локали.
// Порядок поиска: перекрытие варианта -> общая таблица -> сырой ключ поля.
func (b *Bundle) FieldLabel(typ, code, field string) string {
	loc := code
	if !b.Supported(loc) {
		loc = "en"
	}
	if byLocale, ok := b.Overrides[typ]; ok {
		if labels, ok := byLocale[loc]; ok {
			if v, ok := labels[field]; ok {
				return v
			}
		}
	}
	if labels, ok := b.Labels[loc]; ok {
		if v, ok := labels[field]; ok {
			return v
		}
	}
	return field
}
