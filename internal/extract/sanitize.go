// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// illegalFilenameChars strips the characters rejected by common
// filesystems so a passage title can serve as a filename.
var illegalFilenameChars = strings.NewReplacer(
	"<", "", ">", "", ":", "", `"`, "",
	"/", "", `\`, "", "|", "", "?", "", "*", "",
)

// SanitizeFilename makes title safe for use as a filename: illegal
// characters are removed, the result is truncated to 200 runes and
// trimmed of surrounding whitespace, and an empty result becomes
// "untitled".
func SanitizeFilename(title string) string {
	title = illegalFilenameChars.Replace(title)
	if r := []rune(title); len(r) > maxTitleRunes {
		title = string(r[:maxTitleRunes])
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "untitled"
	}
	return title
}
