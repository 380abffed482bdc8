package util

import (
	"html"
	"strings"
)

// blockTags 这些标签结束时补换行，保持纯文本的段落结构
var blockTags = map[string]bool{
	"p": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"div": true, "br": true, "pre": true,
}

// StripHTML 将题目答案的 HTML 标记剥离为纯文本，用于复制导出。
// 内容是我们自己编排的受信标记，这里只做标签剔除，不是通用 HTML 解析
func StripHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inTag := false
	tagStart := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '<':
			inTag = true
			tagStart = i + 1
		case s[i] == '>' && inTag:
			inTag = false
			tag := strings.ToLower(strings.TrimSpace(s[tagStart:i]))
			tag = strings.TrimPrefix(tag, "/")
			tag = strings.TrimSuffix(tag, "/")
			if idx := strings.IndexByte(tag, ' '); idx >= 0 {
				tag = tag[:idx]
			}
			if blockTags[tag] {
				b.WriteByte('\n')
			}
		case !inTag:
			b.WriteByte(s[i])
		}
	}

	text := html.UnescapeString(b.String())

	// 折叠连续空行
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
