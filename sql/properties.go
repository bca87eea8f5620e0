package sql

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cdss/errors"
)

const (
	defaultURL    = "data.db"
	defaultDriver = "sqlite"
)

// Properties 行源连接配置
type Properties struct {
	URL      string `yaml:"url"`
	Driver   string `yaml:"driver"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DefaultProperties 返回内置默认配置
func DefaultProperties() Properties {
	return Properties{URL: defaultURL, Driver: defaultDriver}
}

// LoadProperties 从 YAML 配置文件加载连接属性
// 缺失字段回退到内置默认值，字段值两端空白会被裁剪
func LoadProperties(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Properties{}, errors.WrapError(err, errors.ErrCodeInvalidArgument, "读取配置文件失败: "+path)
	}
	return ParseProperties(data)
}

// ParseProperties 解析 YAML 配置内容
func ParseProperties(data []byte) (Properties, error) {
	var p Properties
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Properties{}, errors.WrapError(err, errors.ErrCodeInvalidArgument, "解析配置内容失败")
	}
	p.URL = strings.TrimSpace(p.URL)
	p.Driver = strings.TrimSpace(p.Driver)
	p.Username = strings.TrimSpace(p.Username)
	p.Password = strings.TrimSpace(p.Password)
	if p.URL == "" {
		p.URL = defaultURL
	}
	if p.Driver == "" {
		p.Driver = defaultDriver
	}
	return p, nil
}
