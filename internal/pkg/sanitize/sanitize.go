package sanitize

import (
	"regexp"
	"strings"
)

var (
	linkRe = regexp.MustCompile(`<a\s+[^>]*>.*?</a>`)
	tagRe  = regexp.MustCompile(`<[^>]*>`)
	// 表单输入里出现这些查询操作符就直接拒绝
	injectionTokens = []string{
		"$eq", "$ne", "$gt", "$gte", "$lt", "$lte",
		"$in", "$nin", "$or", "$and", "$not", "$nor",
		"$where", "$regex", "$exists",
		"<script", "javascript:", "onerror=", "onload=",
	}
)

// Sanitize 去除富文本标签和属性，只留纯文本。
// 反复清洗直到内容不再变化，保证 Sanitize(Sanitize(x)) == Sanitize(x)，
// 防止 &lt;script&gt; 这种解码之后又变出标签的输入。
func Sanitize(raw string) string {
	res := raw
	// 每一轮只做解码和删减，嵌套再深也会在输入长度以内收敛
	for i := 0; i <= len(raw); i++ {
		next := stripOnce(res)
		if next == res {
			return res
		}
		res = next
	}
	return res
}

func stripOnce(content string) string {
	// 超链接连内容一起去掉
	content = linkRe.ReplaceAllString(content, "")
	content = processStructure(content)
	content = tagRe.ReplaceAllString(content, "")
	content = processEntities(content)
	return processWhitespace(content)
}

// ContainsInjection 检查输入里是否带有注入特征的操作符。
// 和具体的校验规则无关，命中任何一个都算非法输入。
func ContainsInjection(s string) bool {
	lower := strings.ToLower(s)
	for _, token := range injectionTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func processStructure(content string) string {
	// 列表项保留一个项目符号
	content = strings.ReplaceAll(content, "<li>", "\n• ")
	content = strings.ReplaceAll(content, "</li>", "")
	for _, tag := range []string{"ul", "ol", "blockquote", "pre"} {
		content = strings.ReplaceAll(content, "<"+tag+">", "")
		content = strings.ReplaceAll(content, "</"+tag+">", "")
	}
	content = strings.ReplaceAll(content, "<p>", "")
	content = strings.ReplaceAll(content, "</p>", "\n")
	for i := 1; i <= 6; i++ {
		openTag := "<h" + string(rune('0'+i)) + ">"
		closeTag := "</h" + string(rune('0'+i)) + ">"
		content = strings.ReplaceAll(content, openTag, "")
		content = strings.ReplaceAll(content, closeTag, " ")
	}
	return content
}

func processEntities(content string) string {
	replacements := [][2]string{
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", "\""},
		{"&#39;", "'"},
		{"&nbsp;", " "},
	}
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r[0], r[1])
	}
	return content
}

var (
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	newlineRe = regexp.MustCompile(`\n{3,}`)
	blankRe   = regexp.MustCompile(`\s+`)
)

func processWhitespace(content string) string {
	content = spaceRe.ReplaceAllString(content, " ")
	content = newlineRe.ReplaceAllString(content, "\n\n")
	// 没有列表项就把换行也压掉
	if !strings.Contains(content, "• ") {
		content = blankRe.ReplaceAllString(content, " ")
	}
	return strings.TrimSpace(content)
}
