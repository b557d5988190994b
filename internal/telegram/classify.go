package telegram

import (
	"path/filepath"
	"strings"
)

// Kind определяет, каким методом Bot API отправляется вложение
type Kind string

const (
	KindPhoto    Kind = "photo"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true, ".bmp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".mkv": true,
}

// Classify выбирает метод доставки по заявленному content type и
// расширению имени файла. Всё неопознанное уходит как документ.
func Classify(contentType, filename string) Kind {
	ct := strings.ToLower(contentType)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case strings.HasPrefix(ct, "image/") || imageExtensions[ext]:
		return KindPhoto
	case strings.HasPrefix(ct, "video/") || videoExtensions[ext]:
		return KindVideo
	default:
		return KindDocument
	}
}

// Method возвращает имя метода Bot API
func (k Kind) Method() string {
	switch k {
	case KindPhoto:
		return "sendPhoto"
	case KindVideo:
		return "sendVideo"
	default:
		return "sendDocument"
	}
}

// Field возвращает имя поля multipart формы для бинарных данных
func (k Kind) Field() string {
	return string(k)
}

// WantsCaption сообщает, подписывается ли вложение именем файла.
// Фотографии отправляются без подписи.
func (k Kind) WantsCaption() bool {
	return k != KindPhoto
}
