// Package web содержит шаблоны страниц и статические файлы сайта,
// вшитые в бинарник.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates возвращает дерево с шаблонами страниц
func Templates() fs.FS {
	return files
}

// Static возвращает поддерево статических файлов
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}
