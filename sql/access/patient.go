package access

import (
	"context"

	"cdss/model"
	"cdss/sql"
)

// PatientAccessor 患者表存取器
type PatientAccessor struct {
	*Accessor[model.Patient, *model.Patient]
}

// NewPatientAccessor 构造患者表存取器
func NewPatientAccessor(source sql.IRowSource) *PatientAccessor {
	return &PatientAccessor{
		Accessor: New[model.Patient, *model.Patient](sql.PatientTable, source),
	}
}

// FindAllWith 返回患有指定病症的全部患者
func (a *PatientAccessor) FindAllWith(ctx context.Context, ailment *model.Ailment) ([]*model.Patient, error) {
	return a.Filter(ctx, func(p *model.Patient) bool {
		return p.Ailments.Contains(ailment)
	})
}

// GroupByAgeGroup 按年龄组对全表患者分组
func (a *PatientAccessor) GroupByAgeGroup(ctx context.Context) (map[model.AgeGroup][]*model.Patient, error) {
	return GroupBy(ctx, a.Accessor, func(p *model.Patient) model.AgeGroup {
		return p.AgeGroup
	})
}
