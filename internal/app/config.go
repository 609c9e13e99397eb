package app

import (
	"context"
	"fmt"
	"io"

	"extract-wish-url/internal/config"
	"gopkg.in/yaml.v3"
)

func RunConfigInit(_ context.Context, path string, out io.Writer) error {
	p, err := config.ResolvePath(path)
	if err != nil {
		return err
	}
	if err := config.Init(p); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "已写入配置: %s\n", p)
	return err
}

func RunConfigShow(_ context.Context, path string, out io.Writer) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	b, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

// RunTitles prints the effective title table.
func RunTitles(_ context.Context, path string, out io.Writer) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Titles); err != nil {
		return fmt.Errorf("序列化 title 列表失败: %w", err)
	}
	return enc.Close()
}
