package handler

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/i18n"
	"jenny-wellness/internal/questionnaire"
)

// PageHandler отдает серверно-отрисованные страницы сайта
type PageHandler struct {
	bundle  *i18n.Bundle
	schemas *config.QuestionnairesConfig
	index   *template.Template
	form    *template.Template
}

func NewPageHandler(bundle *i18n.Bundle, schemas *config.QuestionnairesConfig, templates fs.FS) (*PageHandler, error) {
	index, err := template.ParseFS(templates, "templates/base.html", "templates/index.html")
	if err != nil {
		return nil, err
	}
	form, err := template.ParseFS(templates, "templates/base.html", "templates/questionnaire.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{bundle: bundle, schemas: schemas, index: index, form: form}, nil
}

type pageData struct {
	B      *i18n.Bundle
	Locale string
}

type indexView struct {
	pageData
	Types []string
}

type fieldView struct {
	Name     string
	Kind     string
	Label    string
	Required bool
}

type formView struct {
	pageData
	Type      string
	Personal  []fieldView
	Questions []fieldView
	HasFiles  bool
}

// locale выбирает язык страницы: параметр ?lang= переключает язык и
// запоминается в cookie, иначе берется cookie, иначе русский
func (h *PageHandler) locale(w http.ResponseWriter, r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" && h.bundle.Supported(lang) {
		http.SetCookie(w, &http.Cookie{Name: "locale", Value: lang, Path: "/"})
		return lang
	}
	if c, err := r.Cookie("locale"); err == nil && h.bundle.Supported(c.Value) {
		return c.Value
	}
	return i18n.DefaultLocale
}

// Home отдает главную страницу со списком анкет
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	view := indexView{
		pageData: pageData{B: h.bundle, Locale: h.locale(w, r)},
		Types:    h.schemas.Keys(),
	}
	err := h.index.ExecuteTemplate(w, "base", view)
	if err != nil {
		log.Printf("pages: ошибка рендера главной: %v", err)
	}
}

// Questionnaire отдает страницу одного варианта анкеты
func (h *PageHandler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	typeKey := chi.URLParam(r, "type")
	if !questionnaire.KnownType(typeKey) {
		http.NotFound(w, r)
		return
	}
	schema, ok := h.schemas.Get(typeKey)
	if !ok {
		http.NotFound(w, r)
		return
	}

	locale := h.locale(w, r)
	view := formView{
		pageData: pageData{B: h.bundle, Locale: locale},
		Type:     typeKey,
	}

	for _, f := range schema.Fields {
		switch f.Kind {
		case "consent":
			// отдельный блок согласия в шаблоне
		case "files":
			view.HasFiles = true
		default:
			fv := fieldView{
				Name:     f.Name,
				Kind:     f.Kind,
				Label:    h.bundle.FieldLabel(typeKey, locale, f.Name),
				Required: f.Required,
			}
			if f.Personal {
				view.Personal = append(view.Personal, fv)
			} else {
				view.Questions = append(view.Questions, fv)
			}
		}
	}

	err := h.form.ExecuteTemplate(w, "base", view)
	if err != nil {
		log.Printf("pages: ошибка рендера анкеты %s: %v", typeKey, err)
	}
}
