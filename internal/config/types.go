package config

// QuestionnairesConfig описывает все варианты анкет, загружаемые из YAML
type QuestionnairesConfig struct {
	Questionnaires []Questionnaire `yaml:"questionnaires"`
}

// Questionnaire представляет один вариант анкеты
type Questionnaire struct {
	Key    string  `yaml:"key"`
	Fields []Field `yaml:"fields"`
}

// Field представляет одно поле анкеты
type Field struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind,omitempty"` // text | number | textarea | consent | files
	Required bool   `yaml:"required"`
	Personal bool   `yaml:"personal,omitempty"`
}

// Методы для удобного доступа к конфигурации

// Get возвращает анкету по каноническому ключу
func (c *QuestionnairesConfig) Get(key string) (*Questionnaire, bool) {
	for i := range c.Questionnaires {
		if c.Questionnaires[i].Key == key {
			return &c.Questionnaires[i], true
		}
	}
	return nil, false
}

// Keys возвращает канонические ключи всех анкет в порядке объявления
func (c *QuestionnairesConfig) Keys() []string {
	keys := make([]string, 0, len(c.Questionnaires))
	for _, q := range c.Questionnaires {
		keys = append(keys, q.Key)
	}
	return keys
}

// FieldOrder возвращает имена полей в порядке отображения
func (q *Questionnaire) FieldOrder() []string {
	names := make([]string, 0, len(q.Fields))
	for _, f := range q.Fields {
		names = append(names, f.Name)
	}
	return names
}

// PersonalFields возвращает множество полей раздела «Личные данные»
func (q *Questionnaire) PersonalFields() map[string]bool {
	personal := make(map[string]bool)
	for _, f := range q.Fields {
		if f.Personal {
			personal[f.Name] = true
		}
	}
	return personal
}

// RequiredFields возвращает имена обязательных полей в порядке объявления
func (q *Questionnaire) RequiredFields() []string {
	var names []string
	for _, f := range q.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
