package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe
// alternatives. Separators and colons become dashes so the visual grouping
// survives; the rest are removed outright.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a generated
// target name and trims surrounding whitespace. Names that reduce to nothing
// or to a relative-path shorthand come back as "unnamed" so the rename still
// has a usable target.
func SanitizeFileName(name string) string {
	cleaned := strings.TrimSpace(fileNameReplacer.Replace(name))
	switch cleaned {
	case "", ".", "..":
		return "unnamed"
	}
	return cleaned
}
