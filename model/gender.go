package model

// Gender 性别枚举
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

// String 返回单字符文本形式
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return "?"
	}
}

// Compare 按枚举序号比较
func (g Gender) Compare(other Gender) int {
	return int(g) - int(other)
}

// ParseGender 解析单字符或全名形式的性别文本
func ParseGender(text string) (Gender, bool) {
	switch text {
	case "M", "MALE":
		return GenderMale, true
	case "F", "FEMALE":
		return GenderFemale, true
	default:
		return GenderMale, false
	}
}
