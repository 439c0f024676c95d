package parse

import (
	"strings"

	"github.com/yegekucuk/git2mind/repo"
)

// extractDockerfile scans directive lines. Keywords match
// case-insensitively; values are the rest of the line, trimmed.
//
// The first FROM wins for Image (it establishes the primary base image,
// with any "AS stage" alias stripped), while the last WORKDIR, ENTRYPOINT,
// and CMD win and later ENV keys overwrite earlier ones: in a multi-stage
// build the final stage's directives describe the runtime configuration.
func extractDockerfile(content string) repo.Metadata {
	meta := repo.Metadata{Env: make(map[string]string)}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(upper, "FROM ") && meta.Image == "":
			image := strings.TrimSpace(line[len("FROM "):])
			if idx := strings.Index(strings.ToUpper(image), " AS "); idx >= 0 {
				image = image[:idx]
			}
			meta.Image = strings.TrimSpace(image)

		case strings.HasPrefix(upper, "WORKDIR "):
			meta.Workdir = strings.TrimSpace(line[len("WORKDIR "):])

		case strings.HasPrefix(upper, "ENTRYPOINT "):
			meta.Entrypoint = strings.TrimSpace(line[len("ENTRYPOINT "):])

		case strings.HasPrefix(upper, "CMD "):
			meta.Cmd = strings.TrimSpace(line[len("CMD "):])

		case strings.HasPrefix(upper, "ENV "):
			key, value, ok := splitEnv(strings.TrimSpace(line[len("ENV "):]))
			if ok {
				meta.Env[key] = value
			}
		}
	}

	if len(meta.Env) == 0 {
		meta.Env = nil
	}
	return meta
}

// splitEnv parses both ENV forms: "KEY=value" and "KEY value".
func splitEnv(rest string) (key string, value string, ok bool) {
	if k, v, found := strings.Cut(rest, "="); found {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}

	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", "", false
	}
	key = fields[0]
	value = strings.TrimSpace(strings.TrimPrefix(rest, key))
	return key, value, true
}
