package access

import (
	"context"

	"cdss/model"
	"cdss/sql"
)

// AilmentAccessor 病症表存取器
type AilmentAccessor struct {
	*Accessor[model.Ailment, *model.Ailment]
}

// NewAilmentAccessor 构造病症表存取器
func NewAilmentAccessor(source sql.IRowSource) *AilmentAccessor {
	return &AilmentAccessor{
		Accessor: New[model.Ailment, *model.Ailment](sql.AilmentTable, source),
	}
}

// WithSymptom 返回症状集合包含指定症状的全部病症
func (a *AilmentAccessor) WithSymptom(ctx context.Context, symptom *model.Symptom) ([]*model.Ailment, error) {
	return a.Filter(ctx, func(ail *model.Ailment) bool {
		return ail.Symptoms.Contains(symptom)
	})
}
