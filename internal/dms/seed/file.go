package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileSource struct {
	path string
}

// NewFileSource 从 YAML（或 JSON）文件读取种子数据
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(ctx context.Context) (*Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseYAML(raw)
}

// ParseYAML 解析种子文件。YAML 先解码为通用结构再按 json 标签映射，
// 这样金额字段可以直接写成数字。
func ParseYAML(raw []byte) (*Dataset, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert seed yaml: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(js, &ds); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &ds, nil
}
