package model

import (
	"strings"
	"time"

	"cdss/errors"
)

// Patient 患者记录
// 可变对象，非线程安全；相等性只看 id
// 年龄组在构造时由出生日期推导，区间不匹配时退回 ADULT
type Patient struct {
	Record
	AgeGroup  AgeGroup   `db:"age_group"`
	Gender    Gender     `db:"gender"`
	BirthDate time.Time  `db:"birth_date"`
	Ailments  AilmentSet `db:"ailments"`
	Symptoms  SymptomSet `db:"symptoms"`
}

// NewPatient 构造患者并打上构造时间戳
func NewPatient(id int, name string, birthDate time.Time, gender Gender) *Patient {
	group, _ := AgeGroupFor(birthDate)
	return &Patient{
		Record:    newRecord(id, name),
		AgeGroup:  group,
		Gender:    gender,
		BirthDate: birthDate,
		Ailments:  NewAilmentSet(),
		Symptoms:  NewSymptomSet(),
	}
}

// Clone 返回与原患者逐字段相同的新实例（集合为浅拷贝）
func (p *Patient) Clone() *Patient {
	c := NewPatient(p.ID, p.Name, p.BirthDate, p.Gender)
	c.AgeGroup = p.AgeGroup
	c.Ailments = p.Ailments.Clone()
	c.Symptoms = p.Symptoms.Clone()
	return c
}

// GetAgeGroup 返回年龄组
func (p *Patient) GetAgeGroup() AgeGroup { return p.AgeGroup }

// SetAgeGroup 设置年龄组，未知枚举值视为缺失参数
func (p *Patient) SetAgeGroup(group AgeGroup) error {
	switch group {
	case AgeGroupUnderage, AgeGroupAdult, AgeGroupElderly:
	default:
		return errors.NewInvalidArgument("未知年龄组")
	}
	p.Touch()
	p.AgeGroup = group
	return nil
}

// GetGender 返回性别
func (p *Patient) GetGender() Gender { return p.Gender }

// SetGender 设置性别，未知枚举值视为缺失参数
func (p *Patient) SetGender(gender Gender) error {
	switch gender {
	case GenderMale, GenderFemale:
	default:
		return errors.NewInvalidArgument("未知性别")
	}
	p.Touch()
	p.Gender = gender
	return nil
}

// GetBirthDate 返回出生日期
func (p *Patient) GetBirthDate() time.Time { return p.BirthDate }

// SetBirthDate 设置出生日期，零值时间视为缺失参数
func (p *Patient) SetBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errors.NewInvalidArgument("出生日期不能为零值")
	}
	p.Touch()
	p.BirthDate = birthDate
	return nil
}

// GetAilments 返回病症集合的拷贝
func (p *Patient) GetAilments() AilmentSet {
	return p.Ailments.Clone()
}

// SetAilments 整体替换病症集合，nil 视为缺失参数
func (p *Patient) SetAilments(ailments AilmentSet) error {
	if ailments == nil {
		return errors.NewInvalidArgument("病症集合不能为 nil")
	}
	p.Touch()
	p.Ailments = ailments
	return nil
}

// AddAilment 插入单个病症，nil 视为缺失参数
func (p *Patient) AddAilment(ailment *Ailment) (bool, error) {
	if ailment == nil {
		return false, errors.NewInvalidArgument("病症不能为 nil")
	}
	p.Touch()
	if p.Ailments == nil {
		p.Ailments = NewAilmentSet()
	}
	return p.Ailments.Add(ailment), nil
}

// GetSymptoms 返回症状集合的拷贝
func (p *Patient) GetSymptoms() SymptomSet {
	return p.Symptoms.Clone()
}

// SetSymptoms 整体替换症状集合，nil 视为缺失参数
func (p *Patient) SetSymptoms(symptoms SymptomSet) error {
	if symptoms == nil {
		return errors.NewInvalidArgument("症状集合不能为 nil")
	}
	p.Touch()
	p.Symptoms = symptoms
	return nil
}

// Compare 自然顺序：四个局部比较结果直接求和
// 局部结果可能相互抵消，因此这并非数学意义上的全序，保持原语义
func (p *Patient) Compare(other *Patient) int {
	return strings.Compare(p.Name, other.Name) +
		p.AgeGroup.Compare(other.AgeGroup) +
		p.BirthDate.Compare(other.BirthDate) +
		p.Gender.Compare(other.Gender)
}

// Equals 同为 Patient 且 id 相同即相等
func (p *Patient) Equals(other *Patient) bool {
	return other != nil && p.ID == other.ID
}
