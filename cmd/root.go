package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"extract-wish-url/internal/app"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	logFile     string
	cfgPath     string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "extract-wish-url <install-directory>",
	Short: "从游戏本地 web 缓存中提取抽卡记录导入 URL",
	Long: "从原神或绝区零安装目录的 web 缓存中找到最近一次打开的抽卡记录页面 URL，\n" +
		"打印到标准输出，可直接粘贴到抽卡记录导入网站。",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return app.RunExtract(cmd.Context(), app.ExtractOptions{
			Verbose:    verbose,
			LogFile:    logFile,
			ConfigPath: cfgPath,
			InstallDir: args[0],
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "在标准错误输出调试日志")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "日志文件路径（JSON 行，自动轮转）")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "配置文件路径（可追加或覆盖游戏定义）")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "显示版本信息")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(configCmd)
}
