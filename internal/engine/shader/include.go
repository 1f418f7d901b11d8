package shader

import (
	"fmt"
	"strings"
)

// Expand replaces every line of the form `#include "name"` in src with
// chunks[name]. Chunks may include other chunks; cycles are an error.
func Expand(src string, chunks map[string]string) (string, error) {
	return expand(src, chunks, nil)
}

func expand(src string, chunks map[string]string, stack []string) (string, error) {
	var b strings.Builder
	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		name, ok := includeName(line)
		if !ok {
			b.WriteString(line)
			continue
		}
		for _, s := range stack {
			if s == name {
				return "", fmt.Errorf("include cycle: %s -> %s", strings.Join(stack, " -> "), name)
			}
		}
		chunk, found := chunks[name]
		if !found {
			return "", fmt.Errorf("unknown include %q", name)
		}
		body, err := expand(chunk, chunks, append(stack, name))
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimRight(body, "\n"))
	}
	return b.String(), nil
}

func includeName(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#include")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
