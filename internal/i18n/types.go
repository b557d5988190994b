package i18n

// Bundle содержит все словари локализации, загружаемые один раз на старте
// процесса и передаваемые по ссылке (никаких глобальных таблиц).
type Bundle struct {
	Locales map[string]*Locale `yaml:"locales"`

	// Labels: локаль -> имя поля -> подпись в сообщении
	Labels map[string]map[string]string `yaml:"labels"`

	// Overrides: ключ анкеты -> локаль -> имя поля -> подпись.
	// Перекрывает общую таблицу Labels для конкретного варианта анкеты.
	Overrides map[string]map[string]map[string]string `yaml:"overrides"`
}

// Locale представляет словарь одной локали
type Locale struct {
	Name       string            `yaml:"name"`
	Yes        string            `yaml:"yes"`
	No         string            `yaml:"no"`
	TimeFormat string            `yaml:"time_format"`
	Types      map[string]string `yaml:"types"`
	UI         map[string]string `yaml:"ui"`
}
