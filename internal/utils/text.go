package utils

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
)

var htmlTag = regexp.MustCompile(`<[^<]+?>`)

// ReadingTime 按每分钟 200 词估算阅读时长
func ReadingTime(html string) string {
	text := htmlTag.ReplaceAllString(html, "")
	words := len(strings.Fields(text))
	if words < 1 {
		words = 1
	}
	return fmt.Sprintf("%d min read", int(math.Ceil(float64(words)/200.0)))
}

// Excerpt 摘要为空时从正文截取
func Excerpt(excerpt, text string, limit int) string {
	if excerpt != "" {
		return excerpt
	}
	cleaned := strings.NewReplacer("#", "", "*", "", "`", "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)
	runes := []rune(cleaned)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return cleaned
}

const codeAlphabet = "0123456789"

// GenerateRandomCode 生成数字验证码（密码重置用）
func GenerateRandomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
