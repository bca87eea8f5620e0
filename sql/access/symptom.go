package access

import (
	"context"

	"cdss/model"
	"cdss/sql"
)

// SymptomAccessor 症状表存取器
type SymptomAccessor struct {
	*Accessor[model.Symptom, *model.Symptom]
}

// NewSymptomAccessor 构造症状表存取器
func NewSymptomAccessor(source sql.IRowSource) *SymptomAccessor {
	return &SymptomAccessor{
		Accessor: New[model.Symptom, *model.Symptom](sql.SymptomTable, source),
	}
}

// CollectFrom 收集病症所关联症状在表中的存量记录
// 病症集合里有、表里没有的症状不出现在结果中
func (a *SymptomAccessor) CollectFrom(ctx context.Context, ailment *model.Ailment) ([]*model.Symptom, error) {
	wanted := ailment.GetSymptoms()
	return a.Filter(ctx, func(s *model.Symptom) bool {
		return wanted.Contains(s)
	})
}
