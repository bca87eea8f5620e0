package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdss/model"
	"cdss/sql"
)

func ailmentRow(id int, name, symptoms string) *sql.Row {
	return sql.NewRow(map[string]any{"id": int64(id), "name": name, "symptoms": symptoms})
}

func patientRow(id int, name, ageGroup, gender, birthDate, ailments, symptoms string) *sql.Row {
	return sql.NewRow(map[string]any{
		"id":         int64(id),
		"name":       name,
		"age_group":  ageGroup,
		"gender":     gender,
		"birth_date": birthDate,
		"ailments":   ailments,
		"symptoms":   symptoms,
	})
}

// 测试从病症的症状集合收集表中存量症状记录
func TestSymptomAccessor_CollectFrom(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{rows: []*sql.Row{
		symptomRow(2, "fever"),
		symptomRow(5, "cough"),
		symptomRow(9, "headache"),
	}}
	acc := &SymptomAccessor{Accessor: New[model.Symptom, *model.Symptom](sql.SymptomTable, source)}

	ailment := model.NewAilment(1, "flu")
	_, err := ailment.AddSymptom(model.NewSymptom(2, "fever"))
	require.NoError(t, err)
	// 集合里引用了表中不存在的症状，结果应把它滤掉
	_, err = ailment.AddSymptom(model.NewSymptom(42, "absent"))
	require.NoError(t, err)

	got, err := acc.CollectFrom(ctx, ailment)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].GetID())
}

// 测试按症状反查病症
func TestAilmentAccessor_WithSymptom(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{rows: []*sql.Row{
		ailmentRow(1, "flu", "2:fever;5:cough"),
		ailmentRow(2, "cold", "5:cough"),
		ailmentRow(3, "migraine", "9:headache"),
	}}
	acc := &AilmentAccessor{Accessor: New[model.Ailment, *model.Ailment](sql.AilmentTable, source)}

	got, err := acc.WithSymptom(ctx, model.NewSymptom(5, "cough"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].GetID())
	assert.Equal(t, 2, got[1].GetID())
}

// 测试病症的自然顺序两端：重叠度量对非空集合没有负值，
// 大小关系由两个比较方向的差给出
func TestAilmentAccessor_MinimalMaximal(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{rows: []*sql.Row{
		ailmentRow(1, "flu", "2:fever;5:cough"),
		ailmentRow(2, "cold", "5:cough"),
		ailmentRow(3, "pneumonia", "2:fever;5:cough;9:chest pain"),
	}}
	acc := &AilmentAccessor{Accessor: New[model.Ailment, *model.Ailment](sql.AilmentTable, source)}

	min, err := acc.Minimal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cold", min.GetName())

	max, err := acc.Maximal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pneumonia", max.GetName())
}

// 测试按病症反查患者
func TestPatientAccessor_FindAllWith(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{rows: []*sql.Row{
		patientRow(1, "Ada", "ADULT", "F", "1980-06-15", "1:flu", "5:cough"),
		patientRow(2, "Ben", "ELDERLY", "M", "1950-03-01", "3:migraine", "9:headache"),
		patientRow(3, "Cleo", "ADULT", "F", "1975-01-20", "1:flu;3:migraine", "2:fever"),
	}}
	acc := &PatientAccessor{Accessor: New[model.Patient, *model.Patient](sql.PatientTable, source)}

	got, err := acc.FindAllWith(ctx, model.NewAilment(1, "flu"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].GetID())
	assert.Equal(t, 3, got[1].GetID())
}

// 测试按年龄组分组
func TestPatientAccessor_GroupByAgeGroup(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{rows: []*sql.Row{
		patientRow(1, "Ada", "ADULT", "F", "1980-06-15", "", ""),
		patientRow(2, "Ben", "ELDERLY", "M", "1950-03-01", "", ""),
		patientRow(3, "Cleo", "ADULT", "F", "1975-01-20", "", ""),
	}}
	acc := &PatientAccessor{Accessor: New[model.Patient, *model.Patient](sql.PatientTable, source)}

	groups, err := acc.GroupByAgeGroup(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups[model.AgeGroupAdult], 2)
	assert.Len(t, groups[model.AgeGroupElderly], 1)
}
