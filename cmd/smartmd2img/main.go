package main

import (
	"fmt"
	"os"

	"github.com/Daily-AC/SmartMd2Img/internal/cli"
)

// 构建时通过 -ldflags 注入
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(Version, Commit, BuildDate)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
