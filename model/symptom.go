package model

import "strings"

// Symptom 症状记录，除基础字段外无额外属性
// 可变对象，非线程安全；相等性只看 id
type Symptom struct {
	Record
}

// NewSymptom 构造症状并打上构造时间戳
func NewSymptom(id int, name string) *Symptom {
	return &Symptom{Record: newRecord(id, name)}
}

// Compare 自然顺序：按名称做字典序比较
func (s *Symptom) Compare(other *Symptom) int {
	return strings.Compare(s.Name, other.Name)
}

// Equals 同为 Symptom 且 id 相同即相等
func (s *Symptom) Equals(other *Symptom) bool {
	return other != nil && s.ID == other.ID
}
