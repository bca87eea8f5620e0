package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdss/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestAgeGroupFor_Ranges 三段闭区间划分
func TestAgeGroupFor_Ranges(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want AgeGroup
	}{
		{"1998 元旦起算未成年", date(1998, time.January, 1), AgeGroupUnderage},
		{"世纪之后仍未成年", date(2020, time.June, 15), AgeGroupUnderage},
		{"1997 年末为成年", date(1997, time.December, 31), AgeGroupAdult},
		{"1952 年初为成年", date(1952, time.January, 1), AgeGroupAdult},
		{"1951 年末为老年", date(1951, time.December, 31), AgeGroupElderly},
		{"远古日期为老年", date(1900, time.March, 3), AgeGroupElderly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AgeGroupFor(tt.d)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAgeGroup_Parse 名称解析与 ADULT 回退
func TestAgeGroup_Parse(t *testing.T) {
	g, ok := ParseAgeGroup("ELDERLY")
	assert.True(t, ok)
	assert.Equal(t, AgeGroupElderly, g)

	g, ok = ParseAgeGroup("whatever")
	assert.False(t, ok)
	assert.Equal(t, AgeGroupAdult, g)
}

// TestGender_StringAndParse 单字符文本形式
func TestGender_StringAndParse(t *testing.T) {
	assert.Equal(t, "M", GenderMale.String())
	assert.Equal(t, "F", GenderFemale.String())

	g, ok := ParseGender("F")
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, g)

	g, ok = ParseGender("FEMALE")
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, g)

	_, ok = ParseGender("x")
	assert.False(t, ok)
}

// TestNewPatient_DerivesAgeGroup 构造时按出生日期推导年龄组
func TestNewPatient_DerivesAgeGroup(t *testing.T) {
	p := NewPatient(1, "Ada", date(2001, time.May, 5), GenderFemale)
	assert.Equal(t, AgeGroupUnderage, p.AgeGroup)

	p = NewPatient(2, "Bob", date(1950, time.May, 5), GenderMale)
	assert.Equal(t, AgeGroupElderly, p.AgeGroup)

	assert.NotNil(t, p.Ailments)
	assert.NotNil(t, p.Symptoms)
}

// TestPatient_SettersValidate 修改方法的参数校验与时间戳刷新
func TestPatient_SettersValidate(t *testing.T) {
	p := NewPatient(1, "Ada", date(1990, time.May, 5), GenderFemale)

	err := p.SetBirthDate(time.Time{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))

	err = p.SetAilments(nil)
	require.Error(t, err)

	err = p.SetGender(Gender(42))
	require.Error(t, err)

	stamp := p.GetLastUpdated()
	time.Sleep(time.Millisecond)
	require.NoError(t, p.SetGender(GenderMale))
	assert.True(t, p.GetLastUpdated().After(stamp))
}

// TestPatient_GettersReturnCopies 集合取值器返回拷贝
func TestPatient_GettersReturnCopies(t *testing.T) {
	p := NewPatient(1, "Ada", date(1990, time.May, 5), GenderFemale)
	_, err := p.AddAilment(NewAilment(1, "influenza"))
	require.NoError(t, err)

	got := p.GetAilments()
	got.Add(NewAilment(2, "intruder"))
	assert.Equal(t, 1, p.Ailments.Len())
}

// TestPatient_CompareSumsPartials 四个局部比较直接求和，允许相互抵消
func TestPatient_CompareSumsPartials(t *testing.T) {
	a := NewPatient(1, "Ada", date(1990, time.May, 5), GenderFemale)
	b := NewPatient(2, "Ada", date(1990, time.May, 5), GenderFemale)
	assert.Zero(t, a.Compare(b))

	// 名称占优一位，性别反向一位，恰好抵消
	c := NewPatient(3, "Adb", date(1990, time.May, 5), GenderMale)
	assert.Zero(t, a.Compare(c))

	// 出生日期单独生效
	d := NewPatient(4, "Ada", date(1991, time.May, 5), GenderFemale)
	assert.Negative(t, a.Compare(d))
}

// TestPatient_Clone 拷贝构造逐字段相同且集合独立
func TestPatient_Clone(t *testing.T) {
	p := NewPatient(1, "Ada", date(1990, time.May, 5), GenderFemale)
	_, err := p.AddAilment(NewAilment(1, "influenza"))
	require.NoError(t, err)

	c := p.Clone()
	assert.True(t, p.Equals(c))
	assert.Equal(t, p.AgeGroup, c.AgeGroup)
	assert.Equal(t, 1, c.Ailments.Len())

	c.Ailments.Add(NewAilment(2, "other"))
	assert.Equal(t, 1, p.Ailments.Len())
}
