package service

import (
	"math/rand"
	"regexp"
	"strings"
)

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

const slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// MakeSlug 由商家名称生成公开访问的 slug，如 "Salon Ewa" -> "salon-ewa-x7km"
// 前缀由名称归一化得到，后缀为 4 位随机字符；唯一性依赖随机后缀的概率保证
// （36^4 ≈ 168 万种组合），存储层不做二次查重
func MakeSlug(name string) string {
	clean := slugNonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	clean = strings.Trim(clean, "-")
	if len(clean) > 30 {
		clean = clean[:30]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = slugSuffixChars[rand.Intn(len(slugSuffixChars))]
	}
	return clean + "-" + string(suffix)
}
