package cmd

import (
	"extract-wish-url/internal/app"
	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "列出支持的游戏及其缓存目录",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunTitles(cmd.Context(), cfgPath, cmd.OutOrStdout())
	},
}
