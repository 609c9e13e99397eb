package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"extract-wish-url/internal/cache"
	"extract-wish-url/internal/game"
	"extract-wish-url/internal/scan"
	"github.com/rs/zerolog"
)

type Extractor struct {
	Titles       []game.Title
	MaxURLLength int
	Log          zerolog.Logger
}

type Result struct {
	URL        string
	Title      string
	DataFile   string
	Offset     int
	Candidates int
}

// New returns an Extractor over titles; an empty list means the built-in table.
func New(titles []game.Title, maxURLLength int, log zerolog.Logger) *Extractor {
	if len(titles) == 0 {
		titles = game.Builtin()
	}
	if maxURLLength <= 0 {
		maxURLLength = scan.DefaultMaxURLLength
	}
	return &Extractor{Titles: titles, MaxURLLength: maxURLLength, Log: log}
}

// Extract returns the import URL of the most recent session recorded under
// installDir using the built-in title table.
func Extract(ctx context.Context, installDir string) (string, error) {
	res, err := New(nil, 0, zerolog.Nop()).Extract(ctx, installDir)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

func (x *Extractor) Extract(ctx context.Context, installDir string) (Result, error) {
	var res Result

	info, err := os.Stat(installDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, newError(KindInvalidInstallDirectory, installDir, "目录不存在", nil)
		}
		return res, newError(KindIO, installDir, "读取安装目录失败", err)
	}
	if !info.IsDir() {
		return res, newError(KindInvalidInstallDirectory, installDir, "不是目录", nil)
	}

	title, dataDir, err := game.Detect(installDir, x.Titles)
	if err != nil {
		detail := "未找到以下任一目录: " + strings.Join(game.DataDirNames(x.Titles), " ")
		return res, newError(KindInvalidInstallDirectory, installDir, detail, nil)
	}
	res.Title = title.Name
	x.Log.Debug().Str("title", title.Name).Str("data_dir", dataDir).Msg("game detected")

	if err := ctx.Err(); err != nil {
		return res, err
	}

	loc, err := cache.Locate(dataDir)
	if err != nil {
		if errors.Is(err, cache.ErrDataFileNotFound) {
			return res, newError(KindLogFileNotFound, loc.WebCachesDir, "未找到 web 缓存数据文件", nil)
		}
		return res, newError(KindIO, loc.WebCachesDir, "读取 web 缓存目录失败", err)
	}
	res.DataFile = loc.DataFile
	if loc.Version == nil {
		x.Log.Warn().Str("web_caches", loc.WebCachesDir).Msg("未找到带版本号的缓存目录，使用旧版缓存布局")
	}
	x.Log.Debug().
		Str("data_file", loc.DataFile).
		Stringer("cache_version", loc.Version).
		Msg("web cache located")

	data, err := os.ReadFile(loc.DataFile)
	if err != nil {
		return res, newError(KindIO, loc.DataFile, "读取 web 缓存数据文件失败", err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	pattern := scan.Pattern{
		Prefix: title.URLPrefix,
		Marker: title.Marker,
		Suffix: title.URLSuffix,
		MaxLen: x.MaxURLLength,
	}
	matches := scan.FindAll(data, pattern)
	res.Candidates = len(matches)
	x.Log.Debug().Int("bytes", len(data)).Int("candidates", len(matches)).Msg("data file scanned")
	last, ok := scan.Latest(matches)
	if !ok {
		detail := fmt.Sprintf("未找到以 %s 开头的抽卡记录 URL，请先在游戏内打开抽卡历史记录页面", title.URLPrefix)
		return res, newError(KindURLNotFound, loc.DataFile, detail, nil)
	}

	res.URL = last.URL
	res.Offset = last.Offset
	return res, nil
}
