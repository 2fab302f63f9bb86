package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miajio/cpca/internal/config"
	"github.com/miajio/cpca/internal/logger"
)

var version = "0.1.0"

// app 命令行共享状态
type app struct {
	configPath string
	dictPath   string
	encoding   string
	storeDir   string

	conf   *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "cpca",
		Short: "Chinese province/city/area extractor",
		Long: `cpca extracts the province, city and county from Chinese address
strings using an administrative-division dictionary, and splits off the
remaining street-level address.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML config file")
	pf.StringVar(&a.dictPath, "dict", "", "dictionary file (adcode,name,longitude,latitude)")
	pf.StringVar(&a.encoding, "encoding", "", "dictionary encoding: utf-8 or gbk")
	pf.StringVar(&a.storeDir, "store", "", "badger store directory; read the dictionary from it instead of --dict")

	rootCmd.AddCommand(transformCmd(a))
	rootCmd.AddCommand(importCmd(a))
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(cutCmd(a))
	return rootCmd
}

// setup 读取配置并创建日志器, 命令行参数优先于配置
func (a *app) setup() error {
	conf, err := config.Load(a.configPath, ".env")
	if err != nil {
		return err
	}
	if a.dictPath != "" {
		conf.Dict.Path = a.dictPath
	}
	if a.encoding != "" {
		conf.Dict.Encoding = a.encoding
	}
	if a.storeDir != "" {
		conf.Store.Dir = a.storeDir
	}
	a.conf = conf

	l, err := logger.New(conf.Log.Level, conf.Log.Format)
	if err != nil {
		return err
	}
	a.logger = l
	return nil
}
