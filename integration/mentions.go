package integration

import "regexp"

// mentionPattern recognizes an explicit step reference: the phrase "integration step"
// (or its Russian form "шаг интеграции") followed by a double- or single-quoted name.
//
// This is a heuristic. Other phrasings ("step named X", plurals, unquoted names,
// typographic quotes) are not recognized.
var mentionPattern = regexp.MustCompile(`(?i)(?:integration step|шаг интеграции)\s+(?:"([^"]+)"|'([^']+)')`)

// Mentioned returns the step names a prompt explicitly refers to, in order of first
// appearance and without duplicates. Names keep the casing used in the prompt.
func Mentioned(prompt string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range mentionPattern.FindAllStringSubmatch(prompt, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
