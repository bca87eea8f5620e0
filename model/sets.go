package model

import (
	"fmt"
	"strconv"
	"strings"

	"cdss/collections"
)

// 集合列的文本编码：按 id 升序以 "id:name" 形式拼接，条目间以 ';' 分隔。
// 该形式既是合成器的自然字符串转换（String），也是游标取值时的解码格式。

// SymptomSet 以 id 为键的症状集合，无重复、无顺序
type SymptomSet map[int]*Symptom

// NewSymptomSet 构造症状集合
func NewSymptomSet(symptoms ...*Symptom) SymptomSet {
	s := make(SymptomSet, len(symptoms))
	for _, sym := range symptoms {
		if sym != nil {
			s[sym.ID] = sym
		}
	}
	return s
}

// Add 插入症状，id 已存在时返回 false
func (s SymptomSet) Add(sym *Symptom) bool {
	if sym == nil {
		return false
	}
	if _, ok := s[sym.ID]; ok {
		return false
	}
	s[sym.ID] = sym
	return true
}

// Contains 按 id 判断是否包含
func (s SymptomSet) Contains(sym *Symptom) bool {
	if sym == nil {
		return false
	}
	_, ok := s[sym.ID]
	return ok
}

// Len 返回元素个数
func (s SymptomSet) Len() int { return len(s) }

// IDs 返回升序的 id 切片
func (s SymptomSet) IDs() []int {
	return collections.SortedKeys(s)
}

// Clone 返回浅拷贝
func (s SymptomSet) Clone() SymptomSet {
	c := make(SymptomSet, len(s))
	for id, sym := range s {
		c[id] = sym
	}
	return c
}

// String 返回确定性的文本编码
func (s SymptomSet) String() string {
	parts := make([]string, 0, len(s))
	for _, id := range s.IDs() {
		parts = append(parts, fmt.Sprintf("%d:%s", id, s[id].Name))
	}
	return strings.Join(parts, ";")
}

// ParseSymptomSet 解码集合列文本，非法条目直接跳过
func ParseSymptomSet(text string) SymptomSet {
	s := make(SymptomSet)
	if text == "" {
		return s
	}
	for _, part := range strings.Split(text, ";") {
		id, name, ok := splitEntry(part)
		if !ok {
			continue
		}
		s[id] = NewSymptom(id, name)
	}
	return s
}

// AilmentSet 以 id 为键的病症集合
// 文本编码只携带 id 与名称，不嵌套病症自身的症状集合
type AilmentSet map[int]*Ailment

// NewAilmentSet 构造病症集合
func NewAilmentSet(ailments ...*Ailment) AilmentSet {
	s := make(AilmentSet, len(ailments))
	for _, a := range ailments {
		if a != nil {
			s[a.ID] = a
		}
	}
	return s
}

// Add 插入病症，id 已存在时返回 false
func (s AilmentSet) Add(a *Ailment) bool {
	if a == nil {
		return false
	}
	if _, ok := s[a.ID]; ok {
		return false
	}
	s[a.ID] = a
	return true
}

// Contains 按 id 判断是否包含
func (s AilmentSet) Contains(a *Ailment) bool {
	if a == nil {
		return false
	}
	_, ok := s[a.ID]
	return ok
}

// Len 返回元素个数
func (s AilmentSet) Len() int { return len(s) }

// IDs 返回升序的 id 切片
func (s AilmentSet) IDs() []int {
	return collections.SortedKeys(s)
}

// Clone 返回浅拷贝
func (s AilmentSet) Clone() AilmentSet {
	c := make(AilmentSet, len(s))
	for id, a := range s {
		c[id] = a
	}
	return c
}

// String 返回确定性的文本编码
func (s AilmentSet) String() string {
	parts := make([]string, 0, len(s))
	for _, id := range s.IDs() {
		parts = append(parts, fmt.Sprintf("%d:%s", id, s[id].Name))
	}
	return strings.Join(parts, ";")
}

// ParseAilmentSet 解码集合列文本，非法条目直接跳过
func ParseAilmentSet(text string) AilmentSet {
	s := make(AilmentSet)
	if text == "" {
		return s
	}
	for _, part := range strings.Split(text, ";") {
		id, name, ok := splitEntry(part)
		if !ok {
			continue
		}
		s[id] = NewAilment(id, name)
	}
	return s
}

// splitEntry 拆解单个 "id:name" 条目
func splitEntry(part string) (int, string, bool) {
	idText, name, found := strings.Cut(part, ":")
	if !found || name == "" {
		return 0, "", false
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return 0, "", false
	}
	return id, name, true
}
