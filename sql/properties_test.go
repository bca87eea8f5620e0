package sql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试 YAML 配置解析与空白裁剪
func TestParseProperties(t *testing.T) {
	data := []byte("url: \"  clinic.db  \"\ndriver: sqlite\nusername: admin\npassword: secret\n")

	props, err := ParseProperties(data)
	require.NoError(t, err)
	assert.Equal(t, "clinic.db", props.URL)
	assert.Equal(t, "sqlite", props.Driver)
	assert.Equal(t, "admin", props.Username)
	assert.Equal(t, "secret", props.Password)
}

// 测试缺失字段回退默认值
func TestParseProperties_Defaults(t *testing.T) {
	props, err := ParseProperties([]byte("username: admin\n"))
	require.NoError(t, err)
	assert.Equal(t, "data.db", props.URL)
	assert.Equal(t, "sqlite", props.Driver)
}

// 测试从文件加载
func TestLoadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: \":memory:\"\n"), 0o644))

	props, err := LoadProperties(path)
	require.NoError(t, err)
	assert.Equal(t, ":memory:", props.URL)
	assert.Equal(t, "sqlite", props.Driver)
}

// 测试文件不存在时返回错误
func TestLoadProperties_Missing(t *testing.T) {
	_, err := LoadProperties(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
