package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	testcases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "纯文本原样保留",
			raw:  "Built a search service in Go",
			want: "Built a search service in Go",
		},
		{
			name: "去除成对标签",
			raw:  "<b>Lead</b> developer on <i>payments</i>",
			want: "Lead developer on payments",
		},
		{
			name: "带属性的标签",
			raw:  `<span style="color:red">Kafka</span> pipeline`,
			want: "Kafka pipeline",
		},
		{
			name: "超链接连内容一起去掉",
			raw:  `see <a href="http://evil.example">here</a> for details`,
			want: "see for details",
		},
		{
			name: "列表项保留项目符号",
			raw:  "<ul><li>Cut latency by 40%</li><li>On-call owner</li></ul>",
			want: "• Cut latency by 40%\n• On-call owner",
		},
		{
			name: "实体解码",
			raw:  "Tom &amp; Jerry &quot;pipeline&quot;",
			want: `Tom & Jerry "pipeline"`,
		},
		{
			name: "解码后又出现的标签也要去掉",
			raw:  "&lt;script&gt;alert(1)&lt;/script&gt;hello",
			want: "alert(1)hello",
		},
		{
			name: "压缩多余空白",
			raw:  "too   many\t spaces",
			want: "too many spaces",
		},
		{
			name: "空字符串",
			raw:  "",
			want: "",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.raw))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"<p>one</p><p>two</p>",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&amp;lt;b&amp;gt;nested encoding&amp;lt;/b&amp;gt;",
		"<ul><li>a</li><li>b</li></ul>",
		`<a href="x">link</a> tail`,
		"   spaced   out   ",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input: %q", in)
	}
}

func TestSanitizeDeepNestedEntities(t *testing.T) {
	// 逐层实体编码的 <，每清洗一轮才解出来一层
	deep := "&" + strings.Repeat("amp;", 11) + "lt;"
	once := Sanitize(deep)
	assert.Equal(t, once, Sanitize(once))
	assert.NotContains(t, once, "amp;")

	// 深度编码的 script 标签，解到底之后标签本身也要去掉
	payload := "&" + strings.Repeat("amp;", 11) + "lt;script&" +
		strings.Repeat("amp;", 11) + "gt;alert(1)"
	once = Sanitize(payload)
	assert.Equal(t, once, Sanitize(once))
	assert.NotContains(t, once, "<script")
}

func TestContainsInjection(t *testing.T) {
	testcases := []struct {
		name string
		s    string
		want bool
	}{
		{name: "普通文本", s: "Ada Lovelace", want: false},
		{name: "查询操作符", s: `{"$gt": ""}`, want: true},
		{name: "where子句", s: "a$where b", want: true},
		{name: "大小写混合", s: "JavaScript:alert(1)", want: true},
		{name: "script标签", s: "<SCRIPT>alert(1)</script>", want: true},
		{name: "onerror属性", s: `<img onerror=alert(1)>`, want: true},
		{name: "美元符号本身不算", s: "earned $100k", want: false},
		{name: "空字符串", s: "", want: false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsInjection(tc.s))
		})
	}
}
