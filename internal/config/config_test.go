package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"extract-wish-url/internal/scan"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Scan.MaxURLLength != scan.DefaultMaxURLLength {
		t.Fatalf("max_url_length=%d", cfg.Scan.MaxURLLength)
	}
	if len(cfg.Titles) != 2 {
		t.Fatalf("titles=%d want=2", len(cfg.Titles))
	}
}

func TestLoad_MergesTitlesAndFillsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	content := `titles:
  - name: genshin-cn
    data_dir: YuanShen_Data
    marker: e20190909gacha-v3
    url_prefix: https://webstatic.mihoyo.com/
    url_suffix: game_biz=hk4e_cn
  - name: zzz-global
    data_dir: ZenlessZoneZero_Data
    url_prefix: https://gs.hoyoverse.com/
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Scan.MaxURLLength != scan.DefaultMaxURLLength {
		t.Fatalf("max_url_length=%d", cfg.Scan.MaxURLLength)
	}
	if len(cfg.Titles) != 3 {
		t.Fatalf("titles=%+v", cfg.Titles)
	}
	if cfg.Titles[1].Name != "zzz-global" || cfg.Titles[1].URLSuffix != "" {
		t.Fatalf("zzz override not applied: %+v", cfg.Titles[1])
	}
	if cfg.Titles[2].DataDir != "YuanShen_Data" {
		t.Fatalf("extra title not appended: %+v", cfg.Titles[2])
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("titles: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "解析配置失败") {
		t.Fatalf("err=%v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("titles:\n  - name: x\n    data_dir: a/b\n    url_prefix: https://x/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "配置无效") {
		t.Fatalf("err=%v", err)
	}
}

func TestInitAndReload(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Init(p); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	def := Default()
	if len(cfg.Titles) != len(def.Titles) || cfg.Titles[0] != def.Titles[0] {
		t.Fatalf("reloaded=%+v", cfg.Titles)
	}

	if err := Init(p); !errors.Is(err, ErrConfigExists) {
		t.Fatalf("err=%v, want ErrConfigExists", err)
	}
}

func TestResolvePath(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	got, err := ResolvePath("")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(cfgHome, "extract-wish-url", "config.yaml"); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	got, err = ResolvePath("/tmp/x.yaml")
	if err != nil || got != "/tmp/x.yaml" {
		t.Fatalf("got=%q err=%v", got, err)
	}
}
