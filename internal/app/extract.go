package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"extract-wish-url/internal/config"
	"extract-wish-url/internal/extract"
	"extract-wish-url/internal/util"
)

type ExtractOptions struct {
	Verbose    bool
	LogFile    string
	ConfigPath string
	InstallDir string
	Stdout     io.Writer
	Stderr     io.Writer
}

func (o ExtractOptions) streams() (io.Writer, io.Writer) {
	stdout, stderr := o.Stdout, o.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}

// RunExtract prints the latest import URL found under opts.InstallDir.
// Only the URL goes to stdout.
func RunExtract(ctx context.Context, opts ExtractOptions) error {
	stdout, stderr := opts.streams()
	log, err := NewLogger(stderr, opts.Verbose, opts.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()
	start := time.Now()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	installDir, err := util.ExpandHome(opts.InstallDir)
	if err != nil {
		return err
	}
	log.Event("extract_start", map[string]any{
		"install_dir": installDir,
		"titles":      len(cfg.Titles),
	})

	x := extract.New(cfg.Titles, cfg.Scan.MaxURLLength, log.Zerolog())
	res, err := x.Extract(ctx, installDir)
	if err != nil {
		log.Event("extract_failed", map[string]any{
			"install_dir": installDir,
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
	log.Info(fmt.Sprintf("已从 %s 提取 %s 的抽卡记录 URL（共 %d 个候选）", res.DataFile, res.Title, res.Candidates))
	log.Event("extract_done", map[string]any{
		"title":       res.Title,
		"data_file":   res.DataFile,
		"offset":      res.Offset,
		"candidates":  res.Candidates,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	_, err = fmt.Fprintln(stdout, res.URL)
	return err
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	p, err := config.ResolvePath(path)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(p)
}
