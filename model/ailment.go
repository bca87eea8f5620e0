package model

import (
	"cdss/collections"
	"cdss/errors"
)

// Ailment 病症记录，持有一组症状
// 可变对象，非线程安全；相等性只看 id
type Ailment struct {
	Record
	Symptoms SymptomSet `db:"symptoms"`
}

// NewAilment 构造病症并打上构造时间戳
func NewAilment(id int, name string) *Ailment {
	return &Ailment{
		Record:   newRecord(id, name),
		Symptoms: NewSymptomSet(),
	}
}

// GetSymptoms 返回症状集合的拷贝，调用方无法经由取值器改写内部状态
func (a *Ailment) GetSymptoms() SymptomSet {
	return a.Symptoms.Clone()
}

// SetSymptoms 整体替换症状集合，nil 视为缺失参数
func (a *Ailment) SetSymptoms(symptoms SymptomSet) error {
	if symptoms == nil {
		return errors.NewInvalidArgument("症状集合不能为 nil")
	}
	a.Touch()
	a.Symptoms = symptoms
	return nil
}

// AddSymptom 插入单个症状，nil 视为缺失参数
// 返回 true 表示集合发生了变化
func (a *Ailment) AddSymptom(symptom *Symptom) (bool, error) {
	if symptom == nil {
		return false, errors.NewInvalidArgument("症状不能为 nil")
	}
	a.Touch()
	if a.Symptoms == nil {
		a.Symptoms = NewSymptomSet()
	}
	return a.Symptoms.Add(symptom), nil
}

// Compare 自然顺序：对两个病症的症状集合应用多重集重叠度量
// 注意这只是排序度量而非合法比较器——两个症状集合不相交但等大的
// 病症会被它判为相等，尽管二者按 id 并不相等
func (a *Ailment) Compare(other *Ailment) int {
	return collections.Compare(a.Symptoms.IDs(), other.Symptoms.IDs())
}

// Equals 同为 Ailment 且 id 相同即相等
func (a *Ailment) Equals(other *Ailment) bool {
	return other != nil && a.ID == other.ID
}
