package utils

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

var initialsArgs = func() pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = pinyin.FirstLetter
	return a
}()

// NamePinyin 返回姓名的全拼（无声调）和首字母，例如 张三 -> zhangsan, zs
func NamePinyin(name string) (string, string) {
	full := strings.Join(pinyin.LazyConvert(name, nil), "")
	initials := strings.Join(pinyin.LazyPinyin(name, initialsArgs), "")
	return full, initials
}

// NameMatches 判断姓名是否匹配搜索词，支持汉字、全拼和拼音首字母
func NameMatches(name string, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(name, q) {
		return true
	}

	full, initials := NamePinyin(name)
	return strings.HasPrefix(full, q) || strings.HasPrefix(initials, q)
}
