package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]*-[a-z0-9]{4}$`)

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
	}{
		{"Salon Ewa", "salon-ewa"},
		{"Bar u Tomka", "bar-u-tomka"},
		{"  川味小馆  ", ""}, // 非拉丁字符全部折叠
		{"Café Nr. 7!", "caf-nr-7"},
		{"", ""},
		{"---", ""},
	}

	for _, tc := range cases {
		slug := MakeSlug(tc.name)
		assert.Regexp(t, slugPattern, slug, "输入: %q", tc.name)
		assert.LessOrEqual(t, len(slug), 35, "输入: %q", tc.name)
		assert.True(t, strings.HasPrefix(slug, tc.prefix+"-"), "输入: %q 得到: %q", tc.name, slug)
	}
}

func TestMakeSlug_TruncatesLongNames(t *testing.T) {
	slug := MakeSlug(strings.Repeat("a", 100))
	// 前缀截断到 30 字符，加连字符和 4 位后缀
	assert.Len(t, slug, 35)
	assert.Regexp(t, slugPattern, slug)
}

func TestMakeSlug_RandomSuffix(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[MakeSlug("Salon Ewa")] = true
	}
	// 50 次调用全部相同的概率可以忽略
	assert.Greater(t, len(seen), 1)
}
