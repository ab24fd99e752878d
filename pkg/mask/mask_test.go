package mask_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/pkg/mask"
	"github.com/yaklabco/cjkspacing/pkg/parser/goldmark"
)

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "front matter",
			in:   "---\ntitle: 标题abc\n---\n正文",
			want: "{FRONT_MATTER_PLACEHOLDER_0}\n正文",
		},
		{
			name: "fenced code",
			in:   "前\n```go\nx := \"中文\"\n```\n后",
			want: "前\n{CODE_BLOCK_PLACEHOLDER_0}\n后",
		},
		{
			name: "fence info string",
			in:   "```js 示例abc\n中文\n```",
			want: "{CODE_BLOCK_PLACEHOLDER_0}",
		},
		{
			name: "unclosed fence runs to the end",
			in:   "前\n~~~\n中文abc\n",
			want: "前\n{CODE_BLOCK_PLACEHOLDER_0}\n",
		},
		{
			name: "inline code",
			in:   "中文`code`中文",
			want: "中文{INLINE_CODE_PLACEHOLDER_0}中文",
		},
		{
			name: "inline html",
			in:   "中文<u>下划线</u>中文",
			want: "中文{HTML_PLACEHOLDER_0}下划线{HTML_PLACEHOLDER_1}中文",
		},
		{
			name: "math block and inline math",
			in:   "$$\nx^2\n$$\n公式$f(x)$公式",
			want: "{MATH_BLOCK_PLACEHOLDER_0}\n公式{INLINE_MATH_PLACEHOLDER_1}公式",
		},
		{
			name: "dollar amounts are not math",
			in:   "价格$5和$10",
			want: "价格$5和$10",
		},
		{
			name: "images and embeds",
			in:   "![[图片.png]] ![图](a.png)",
			want: "{IMAGE_PLACEHOLDER_0} {IMAGE_PLACEHOLDER_1}",
		},
		{
			name: "wiki links and links",
			in:   "[[笔记]] [链接](http://example.com) https://example.com/a",
			want: "{WIKI_LINK_PLACEHOLDER_0} {LINK_PLACEHOLDER_1} {LINK_PLACEHOLDER_2}",
		},
		{
			name: "tags but not headings",
			in:   "# 标题\n#标签 文本 #tag2",
			want: "# 标题\n{TAG_PLACEHOLDER_0} 文本 {TAG_PLACEHOLDER_1}",
		},
	}

	masker := mask.New(goldmark.New(goldmark.FlavorGFM))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			masked := masker.Mask(tt.in)
			assert.Equal(t, tt.want, masked.Text)
			assert.Equal(t, tt.in, masked.Restore(masked.Text))
		})
	}
}

// regionSamples each mask to exactly one region when they stand alone as a
// block.
var regionSamples = []struct {
	name string
	text string
}{
	{"fenced code", "```\n代码abc\n```"},
	{"indented code", "    缩进abc"},
	{"inline code", "中文`code`中文"},
	{"html block", "<div>中文abc</div>"},
	{"math block", "$$\nx^2\n$$"},
	{"image", "![图](a.png)"},
	{"embed", "![[图片.png]]"},
	{"wiki link", "[[笔记]]"},
	{"link", "[链接](http://example.com)"},
	{"tag", "#标签"},
	{"inline math", "公式$f(x)$公式"},
}

func TestMask_RegionPairsRoundTrip(t *testing.T) {
	t.Parallel()

	masker := mask.New(goldmark.New(goldmark.FlavorGFM))

	for i, first := range regionSamples {
		for j, second := range regionSamples {
			if i == j {
				continue
			}

			t.Run(first.name+" then "+second.name, func(t *testing.T) {
				t.Parallel()

				doc := first.text + "\n\n" + second.text + "\n"
				masked := masker.Mask(doc)

				require.Equal(t, 2, masked.Len(), masked.Text)
				assert.NotContains(t, masked.Text, "abc")
				assert.Equal(t, doc, masked.Restore(masked.Text))
			})
		}
	}
}

func TestMask_FrontMatterPairsRoundTrip(t *testing.T) {
	t.Parallel()

	masker := mask.New(goldmark.New(goldmark.FlavorGFM))

	for _, sample := range regionSamples {
		t.Run(sample.name, func(t *testing.T) {
			t.Parallel()

			doc := "---\ntitle: 标题\n---\n\n" + sample.text + "\n"
			masked := masker.Mask(doc)

			require.Equal(t, 2, masked.Len(), masked.Text)
			assert.True(t, strings.HasPrefix(masked.Text, "{FRONT_MATTER_PLACEHOLDER_0}"))
			assert.Equal(t, doc, masked.Restore(masked.Text))
		})
	}
}

func TestMask_FencedThenIndentedCode(t *testing.T) {
	t.Parallel()

	doc := "```\nfenced\n```\n\n    indented\n\n中文abc\n"
	masked := mask.New(goldmark.New(goldmark.FlavorGFM)).Mask(doc)

	require.Equal(t, 2, masked.Len())
	fenced := strings.Index(masked.Text, "{CODE_BLOCK_PLACEHOLDER_0}")
	indented := strings.Index(masked.Text, "{CODE_BLOCK_PLACEHOLDER_1}")
	require.GreaterOrEqual(t, fenced, 0)
	assert.Greater(t, indented, fenced)
	assert.NotContains(t, masked.Text, "fenced")
	assert.NotContains(t, masked.Text, "indented")
	assert.Equal(t, doc, masked.Restore(masked.Text))
}

func TestMask_MixedDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	builder.WriteString("---\ntitle: 标题\n---\n\n")
	for _, sample := range regionSamples {
		builder.WriteString(sample.text)
		builder.WriteString("\n\n")
	}
	doc := builder.String()

	masked := mask.New(goldmark.New(goldmark.FlavorGFM)).Mask(doc)
	require.Equal(t, len(regionSamples)+1, masked.Len(), masked.Text)
	assert.Equal(t, doc, masked.Restore(masked.Text))

	spaced := strings.ReplaceAll(masked.Text, "\n\n", "\n\n\n")
	assert.Equal(t, strings.ReplaceAll(doc, "\n\n", "\n\n\n"), masked.Restore(spaced))
}

func TestMask_TokensAreUnique(t *testing.T) {
	t.Parallel()

	masked := mask.New(goldmark.New(goldmark.FlavorGFM)).Mask("`a` 和 `b`")
	assert.Equal(t, "{INLINE_CODE_PLACEHOLDER_0} 和 {INLINE_CODE_PLACEHOLDER_1}", masked.Text)

	swapped := "{INLINE_CODE_PLACEHOLDER_1} 和 {INLINE_CODE_PLACEHOLDER_0}"
	assert.Equal(t, "`b` 和 `a`", masked.Restore(swapped))
}

func TestMask_RestoreAfterEdit(t *testing.T) {
	t.Parallel()

	in := "中文`a`和`b`以及[x](y)"
	masked := mask.New(goldmark.New(goldmark.FlavorGFM)).Mask(in)
	require.Equal(t, 3, masked.Len())

	edited := strings.ReplaceAll(masked.Text, "和", " 和 ")
	assert.Equal(t, "中文`a` 和 `b`以及[x](y)", masked.Restore(edited))
}

func TestMask_SelectedKinds(t *testing.T) {
	t.Parallel()

	masked := mask.New(nil, mask.KindLink).Mask("[[笔记]] `code` [a](b)")
	assert.Equal(t, "[[笔记]] `code` {LINK_PLACEHOLDER_0}", masked.Text)
}

func TestMask_NilFinder(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"中文`code`中文", "```\n中文abc\n```"} {
		masked := mask.New(nil).Mask(in)
		assert.Equal(t, in, masked.Text)
		assert.Zero(t, masked.Len())
	}
}

func TestContainsToken(t *testing.T) {
	t.Parallel()

	assert.True(t, mask.ContainsToken("a {LINK_PLACEHOLDER_3} b"))
	assert.True(t, mask.ContainsToken("{FRONT_MATTER_PLACEHOLDER_0}"))
	assert.False(t, mask.ContainsToken("a {LINK_PLACEHOLDER} b"))
	assert.False(t, mask.ContainsToken("a {OTHER_PLACEHOLDER_1} b"))
	assert.False(t, mask.ContainsToken("中文"))
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, kind := range mask.AllKinds() {
		parsed, ok := mask.ParseKind(kind.String())
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, parsed)
		assert.True(t, mask.ContainsToken(kind.Token(0)), kind.String())
	}

	_, ok := mask.ParseKind("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", mask.Kind(99).String())
	assert.Equal(t, "{LINK_PLACEHOLDER_7}", mask.KindLink.Token(7))
}

func TestExceptionPattern(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(mask.ExceptionPattern())

	for _, kind := range []mask.Kind{mask.KindLink, mask.KindInlineMath, mask.KindInlineCode, mask.KindWikiLink} {
		assert.True(t, pattern.MatchString(kind.Token(12)), kind.String())
	}
	for _, kind := range []mask.Kind{mask.KindCodeBlock, mask.KindHTML, mask.KindTag, mask.KindImage} {
		assert.False(t, pattern.MatchString(kind.Token(1)), kind.String())
	}
}
