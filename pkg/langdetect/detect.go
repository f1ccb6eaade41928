// Package langdetect maps files to the language identifiers used by the
// anchor tables. It leans on go-enry for filename and content
// detection; languages the engine has no table for come back as "".
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers understood by the engine's anchor tables.
const (
	LangYAML       = "yaml"
	LangJSON       = "json"
	LangTOML       = "toml"
	LangINI        = "ini"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangPython     = "python"
	LangCSS        = "css"
	LangGo         = "go"
)

// enryNames maps go-enry's language names to table identifiers. Enry
// names not listed here have no anchor table and are reported as "".
//
//nolint:gochecknoglobals // Read-only lookup table.
var enryNames = map[string]string{
	"YAML":       LangYAML,
	"JSON":       LangJSON,
	"JSON5":      LangJSON,
	"TOML":       LangTOML,
	"INI":        LangINI,
	"JavaScript": LangJavaScript,
	"JSX":        LangJavaScript,
	"TypeScript": LangTypeScript,
	"TSX":        LangTypeScript,
	"Python":     LangPython,
	"CSS":        LangCSS,
	"Go":         LangGo,
}

// extensions shortcuts the common cases so detection does not depend on
// enry's heuristics for unambiguous file names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var extensions = map[string]string{
	".yml":  LangYAML,
	".yaml": LangYAML,
	".json": LangJSON,
	".toml": LangTOML,
	".ini":  LangINI,
	".js":   LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".jsx":  LangJavaScript,
	".ts":   LangTypeScript,
	".tsx":  LangTypeScript,
	".py":   LangPython,
	".css":  LangCSS,
	".go":   LangGo,
}

// Detect returns the language identifier for a file, or "" when the
// file maps to no supported language. The filename decides in almost
// all cases; content only breaks ties for extensionless files.
func Detect(path string, content []byte) string {
	if lang, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}

	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}
	return ""
}

// DetectByContent classifies content with no filename hint, used by
// stdin previews. Detection falls back to "" rather than guessing.
func DetectByContent(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	candidates := []string{
		"YAML", "JSON", "TOML", "INI",
		"JavaScript", "TypeScript", "Python", "CSS", "Go",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return ""
}

// Extensions returns the file extensions (with leading dot) that map to
// any of the given language identifiers. Discovery uses this to build
// its match set from the configured languages.
func Extensions(languages []string) []string {
	want := make(map[string]bool, len(languages))
	for _, lang := range languages {
		want[lang] = true
	}

	var out []string
	for ext, lang := range extensions {
		if want[lang] {
			out = append(out, ext)
		}
	}
	return out
}

func normalize(lang string) string {
	if id, ok := enryNames[lang]; ok {
		return id
	}
	return ""
}
