// Package access 提供按表泛化的记录存取器
//
// 存取器把行源、语句合成与游标装配串起来：查询走反射装配，变更走
// 片段合成。语句文法沿用既有行源的方言（关键字后双空格），变更成功
// 后可选地向发布方广播事件。
package access

import (
	"context"
	"strconv"

	"cdss/errors"
	"cdss/logging"
	"cdss/model"
	"cdss/notify"
	"cdss/sql"
	"cdss/sql/bind"
	"cdss/sql/synth"
)

// Record 可经由存取器存取的记录指针类型
// 在游标装配约束之上额外要求自然顺序比较
type Record[T any] interface {
	*T
	model.IRecord
	Compare(*T) int
}

// Accessor 单表记录存取器
// 不持有可变状态，可在多个协程间共享；底层行源的并发约束由其自身决定
type Accessor[T any, PT Record[T]] struct {
	table    sql.Table
	source   sql.IRowSource
	logger   logging.Logger
	notifier notify.Notifier
}

// New 构造指定表上的存取器
func New[T any, PT Record[T]](table sql.Table, source sql.IRowSource) *Accessor[T, PT] {
	return &Accessor[T, PT]{
		table:  table,
		source: source,
		logger: logging.GetLogger().WithFields(logging.String("table", table.Name)),
	}
}

// WithLogger 替换日志器
func (a *Accessor[T, PT]) WithLogger(logger logging.Logger) *Accessor[T, PT] {
	a.logger = logger.WithFields(logging.String("table", a.table.Name))
	return a
}

// WithNotifier 启用变更事件广播
func (a *Accessor[T, PT]) WithNotifier(notifier notify.Notifier) *Accessor[T, PT] {
	a.notifier = notifier
	return a
}

// Table 返回存取器绑定的表
func (a *Accessor[T, PT]) Table() sql.Table {
	return a.table
}

// All 读出表中全部记录
func (a *Accessor[T, PT]) All(ctx context.Context) ([]PT, error) {
	rows, err := a.source.Query(ctx, "SELECT * FROM "+a.table.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PT
	for {
		row, ok := rows.Next()
		if !ok {
			break
		}
		record, err := bind.FromCursor[T, PT](row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Find 按主键取单条记录，不存在时报 NOT_FOUND
func (a *Accessor[T, PT]) Find(ctx context.Context, id int) (PT, error) {
	records, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.GetID() == id {
			return r, nil
		}
	}
	return nil, errors.NewErrorf(errors.ErrCodeNotFound,
		"表 %s 中不存在 id=%d 的记录", a.table.Name, id)
}

// Filter 返回满足谓词的全部记录
func (a *Accessor[T, PT]) Filter(ctx context.Context, keep func(PT) bool) ([]PT, error) {
	records, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []PT
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Count 统计满足谓词的记录数，谓词为 nil 时统计全表
func (a *Accessor[T, PT]) Count(ctx context.Context, keep func(PT) bool) (int, error) {
	records, err := a.All(ctx)
	if err != nil {
		return 0, err
	}
	if keep == nil {
		return len(records), nil
	}
	n := 0
	for _, r := range records {
		if keep(r) {
			n++
		}
	}
	return n, nil
}

// Minimal 按记录自然顺序取最小记录，空表报 NOT_FOUND
func (a *Accessor[T, PT]) Minimal(ctx context.Context) (PT, error) {
	return a.MinBy(ctx, naturalCompare[T, PT])
}

// Maximal 按记录自然顺序取最大记录，空表报 NOT_FOUND
func (a *Accessor[T, PT]) Maximal(ctx context.Context) (PT, error) {
	return a.MaxBy(ctx, naturalCompare[T, PT])
}

// naturalCompare 用两个方向的比较结果之差决定大小
// 多重集重叠度量对非空集合恒为正，单向比较没有可用的符号；
// 对称比较器的差恰好保留原符号，两类自然顺序因此走同一条路
func naturalCompare[T any, PT Record[T]](x, y PT) int {
	return x.Compare((*T)(y)) - y.Compare((*T)(x))
}

// MinBy 按给定比较器取最小记录，并列时保留先读到的一条
func (a *Accessor[T, PT]) MinBy(ctx context.Context, cmp func(PT, PT) int) (PT, error) {
	records, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.NewErrorf(errors.ErrCodeNotFound, "表 %s 为空", a.table.Name)
	}
	best := records[0]
	for _, r := range records[1:] {
		if cmp(r, best) < 0 {
			best = r
		}
	}
	return best, nil
}

// MaxBy 按给定比较器取最大记录，并列时保留先读到的一条
func (a *Accessor[T, PT]) MaxBy(ctx context.Context, cmp func(PT, PT) int) (PT, error) {
	return a.MinBy(ctx, func(x, y PT) int { return cmp(y, x) })
}

// GroupBy 按键函数把全表记录分组
// 方法无法引入新的类型参数，分组因此是包级函数
func GroupBy[T any, PT Record[T], K comparable](
	ctx context.Context, a *Accessor[T, PT], key func(PT) K,
) (map[K][]PT, error) {
	records, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[K][]PT)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups, nil
}

// Insert 写入一条记录
// 语句文法沿用既有方言：INTO 后不补空格，VALUES 里是赋值列表
func (a *Accessor[T, PT]) Insert(ctx context.Context, record PT) (bool, error) {
	statement := "INSERT INTO" + a.table.Name + "  VALUES (" + synth.AssignmentList(record) + ")"
	if err := a.source.Exec(ctx, statement); err != nil {
		return false, err
	}
	a.logger.Info(ctx, "记录已写入", logging.Int("id", record.GetID()))
	a.publish(ctx, notify.OpInsert, record.GetID())
	return true, nil
}

// Delete 删除记录，主键取自记录自身
func (a *Accessor[T, PT]) Delete(ctx context.Context, record PT) (bool, error) {
	id := record.GetID()
	statement := "DELETE FROM" + a.table.Name + "  WHERE id=" + strconv.Itoa(id)
	if err := a.source.Exec(ctx, statement); err != nil {
		return false, err
	}
	a.logger.Info(ctx, "记录已删除", logging.Int("id", id))
	a.publish(ctx, notify.OpDelete, id)
	return true, nil
}

// Update 按主键整行覆盖记录
// SET 子句里是不带列名的取值列表，同样沿用既有方言
func (a *Accessor[T, PT]) Update(ctx context.Context, record PT) (bool, error) {
	statement := "UPDATE " + a.table.Name + "  SET " + synth.SetList(record) +
		"  WHERE id=" + strconv.Itoa(record.GetID())
	if err := a.source.Exec(ctx, statement); err != nil {
		return false, err
	}
	a.logger.Info(ctx, "记录已更新", logging.Int("id", record.GetID()))
	a.publish(ctx, notify.OpUpdate, record.GetID())
	return true, nil
}

// publish 广播变更事件；广播失败不影响已落盘的变更，仅记日志
func (a *Accessor[T, PT]) publish(ctx context.Context, op notify.Op, recordID int) {
	if a.notifier == nil {
		return
	}
	event := notify.NewEvent(op, a.table.Name, recordID)
	if err := a.notifier.Publish(ctx, event); err != nil {
		a.logger.Warn(ctx, "变更事件广播失败",
			logging.String("op", string(op)), logging.Error(err))
	}
}
