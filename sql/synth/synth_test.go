package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdss/model"
)

// 测试症状记录的赋值列表与取值列表片段
func TestSymptomFragments(t *testing.T) {
	s := model.NewSymptom(7, "流感样症状")

	assert.Equal(t, "id=7, name=流感样症状", AssignmentList(s))
	assert.Equal(t, "7, 流感样症状", SetList(s))
}

// 测试病症记录的集合列以 "id:name;id:name" 文本落入片段
func TestAilmentFragments(t *testing.T) {
	a := model.NewAilment(1, "流感")
	_, err := a.AddSymptom(model.NewSymptom(5, "咳嗽"))
	require.NoError(t, err)
	_, err = a.AddSymptom(model.NewSymptom(2, "发热"))
	require.NoError(t, err)

	assert.Equal(t, "id=1, name=流感, symptoms=2:发热;5:咳嗽", AssignmentList(a))
	assert.Equal(t, "1, 流感, 2:发热;5:咳嗽", SetList(a))
}

// 测试患者记录的片段：日期只保留年月日，审计时间戳不参与
func TestPatientFragments(t *testing.T) {
	p := model.NewPatient(3, "李四", time.Date(1950, 3, 1, 0, 0, 0, 0, time.UTC), model.GenderMale)

	assert.Equal(t,
		"id=3, name=李四, age_group=ELDERLY, gender=M, birth_date=1950-03-01, ailments=, symptoms=",
		AssignmentList(p))
	assert.Equal(t, "3, 李四, ELDERLY, M, 1950-03-01, , ", SetList(p))
}

// 测试同一记录多次合成逐字节稳定
func TestFragmentStability(t *testing.T) {
	a := model.NewAilment(1, "流感")
	_, err := a.AddSymptom(model.NewSymptom(9, "头痛"))
	require.NoError(t, err)
	_, err = a.AddSymptom(model.NewSymptom(4, "乏力"))
	require.NoError(t, err)

	first := AssignmentList(a)
	for i := 0; i < 16; i++ {
		assert.Equal(t, first, AssignmentList(a))
	}
}
