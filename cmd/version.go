package cmd

import (
	"fmt"
	"io"
	"strings"

	"extract-wish-url/internal/game"
)

// Set at build time with -ldflags "-X extract-wish-url/cmd.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func versionText() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}

func builtinTitlesText() string {
	titles := game.Builtin()
	names := make([]string, 0, len(titles))
	for _, t := range titles {
		names = append(names, t.Name)
	}
	return fmt.Sprintf("内置游戏 %d 个：%s", len(titles), strings.Join(names, ", "))
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "extract-wish-url 版本：%s\n", versionText())
	fmt.Fprintln(w, builtinTitlesText())
}
