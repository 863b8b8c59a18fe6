package ai

import (
	"strings"
)

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}

// extractImageID pulls FILE_ID out of a reply such as `<img src="FILE_ID" fuse="true"/>`.
func extractImageID(content string) (string, bool) {
	const marker = `<img src="`
	start := strings.Index(content, marker)
	if start < 0 {
		return "", false
	}
	start += len(marker)
	end := strings.Index(content[start:], `"`)
	if end <= 0 {
		return "", false
	}
	return content[start : start+end], true
}

func previewPrompt(p string) string {
	if len(p) > 60 {
		return p[:60] + "..."
	}
	return p
}
