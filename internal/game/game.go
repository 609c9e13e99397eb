package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Title describes where one game keeps its web cache and what its
// wish-history import URL looks like.
type Title struct {
	Name      string `yaml:"name" validate:"required"`
	DataDir   string `yaml:"data_dir" validate:"required,excludesall=/\\,ne=.,ne=.."`
	Marker    string `yaml:"marker,omitempty"`
	URLPrefix string `yaml:"url_prefix" validate:"required,url"`
	URLSuffix string `yaml:"url_suffix,omitempty"`
}

// Builtin returns the known titles in detection order.
// If there are more games, add them here.
func Builtin() []Title {
	return []Title{
		{
			Name:      "genshin-global",
			DataDir:   "GenshinImpact_Data",
			Marker:    "e20190909gacha-v3",
			URLPrefix: "https://gs.hoyoverse.com/",
			URLSuffix: "game_biz=hk4e_global",
		},
		{
			Name:      "zzz-global",
			DataDir:   "ZenlessZoneZero_Data",
			Marker:    "e20230424gacha",
			URLPrefix: "https://gs.hoyoverse.com/",
			URLSuffix: "game_biz=nap_global",
		},
	}
}

var ErrNoTitle = errors.New("game_data_dir_not_found")

var validate = validator.New(validator.WithRequiredStructEnabled())

func (t Title) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("title %q 无效: %w", t.Name, err)
	}
	if !strings.HasPrefix(t.URLPrefix, "http://") && !strings.HasPrefix(t.URLPrefix, "https://") {
		return fmt.Errorf("title %q 无效: url_prefix 必须以 http:// 或 https:// 开头", t.Name)
	}
	return nil
}

// ValidateAll checks every title and rejects duplicate names.
func ValidateAll(titles []Title) error {
	if len(titles) == 0 {
		return fmt.Errorf("title 列表为空")
	}
	seen := map[string]struct{}{}
	for _, t := range titles {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("title %q 重复", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// Merge overlays extra on base. Entries with a known name replace the base
// entry in place; new names are appended.
func Merge(base, extra []Title) []Title {
	out := make([]Title, len(base))
	copy(out, base)
	index := map[string]int{}
	for i, t := range out {
		index[t.Name] = i
	}
	for _, t := range extra {
		if i, ok := index[t.Name]; ok {
			out[i] = t
			continue
		}
		index[t.Name] = len(out)
		out = append(out, t)
	}
	return out
}

// DataDirNames lists the data directory names in table order.
func DataDirNames(titles []Title) []string {
	names := make([]string, 0, len(titles))
	for _, t := range titles {
		names = append(names, t.DataDir)
	}
	return names
}

// Detect returns the first title whose data directory exists under
// installDir, along with that directory's path. installDir may also be the
// data directory itself.
func Detect(installDir string, titles []Title) (Title, string, error) {
	for _, t := range titles {
		dir := filepath.Join(installDir, t.DataDir)
		if isDir(dir) {
			return t, dir, nil
		}
	}
	base := filepath.Base(filepath.Clean(installDir))
	for _, t := range titles {
		if base == t.DataDir && isDir(installDir) {
			return t, installDir, nil
		}
	}
	return Title{}, "", ErrNoTitle
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
