package sql

import (
	"context"
	gosql "database/sql"
	"time"

	"github.com/google/uuid"

	"cdss/errors"
	"cdss/logging"
)

// Database 基于 database/sql 的行源实现
// 驱动由使用方匿名导入注册，本层只按 Driver 名称打开连接
type Database struct {
	id     string
	db     *gosql.DB
	logger logging.Logger
}

var _ IRowSource = (*Database)(nil)

// Open 按配置打开行源并做连通性探测
func Open(props Properties) (*Database, error) {
	id := uuid.New().String()
	logger := logging.GetLogger().WithFields(
		logging.String("conn_id", id),
		logging.String("driver", props.Driver),
	)

	db, err := gosql.Open(props.Driver, props.URL)
	if err != nil {
		return nil, errors.WrapRowSource(err, "打开连接")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapRowSource(err, "连通性探测")
	}

	logger.Info(ctx, "行源已打开", logging.String("url", props.URL))
	return &Database{id: id, db: db, logger: logger}, nil
}

// ID 返回连接标识
func (d *Database) ID() string {
	return d.id
}

// Query 执行查询并返回前向游标
func (d *Database) Query(ctx context.Context, statement string) (IRows, error) {
	d.logger.Debug(ctx, "执行查询", logging.String("statement", statement))
	rows, err := d.db.QueryContext(ctx, statement)
	if err != nil {
		return nil, errors.WrapRowSource(err, "查询")
	}
	cols, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, errors.WrapRowSource(err, "读取列信息")
	}
	return &dbRows{rows: rows, columns: cols}, nil
}

// Exec 执行变更语句
func (d *Database) Exec(ctx context.Context, statement string) error {
	d.logger.Debug(ctx, "执行变更", logging.String("statement", statement))
	if _, err := d.db.ExecContext(ctx, statement); err != nil {
		return errors.WrapRowSource(err, "变更")
	}
	return nil
}

// Close 关闭底层连接池
func (d *Database) Close() error {
	d.logger.Info(context.Background(), "行源已关闭")
	if err := d.db.Close(); err != nil {
		return errors.WrapRowSource(err, "关闭连接")
	}
	return nil
}

// dbRows 将 *sql.Rows 适配为列名寻址的行游标
type dbRows struct {
	rows    *gosql.Rows
	columns []string
	err     error
}

func (r *dbRows) Next() (*Row, bool) {
	if r.err != nil || !r.rows.Next() {
		if r.err == nil && r.rows.Err() != nil {
			r.err = errors.WrapRowSource(r.rows.Err(), "遍历")
		}
		return nil, false
	}

	raw := make([]any, len(r.columns))
	ptrs := make([]any, len(r.columns))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		r.err = errors.WrapRowSource(err, "扫描行")
		return nil, false
	}

	values := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		values[c] = raw[i]
	}
	return &Row{values: values}, true
}

func (r *dbRows) Close() error {
	if err := r.rows.Close(); err != nil {
		return errors.WrapRowSource(err, "关闭游标")
	}
	return nil
}

func (r *dbRows) Err() error {
	return r.err
}
