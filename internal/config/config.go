// Package config 读取cpca配置: TOML文件, .env文件, 环境变量, 后者覆盖前者
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// 环境变量
const (
	EnvDictPath     = "CPCA_DICT_PATH"
	EnvDictEncoding = "CPCA_DICT_ENCODING"
	EnvStoreDir     = "CPCA_STORE_DIR"
	EnvAddr         = "CPCA_ADDR"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

type dict struct {
	Path     string `toml:"path"`     // 字典文件
	Encoding string `toml:"encoding"` // 字典编码, utf-8或gbk
}

type store struct {
	Dir string `toml:"dir"` // badger目录, 为空时直接读字典文件
}

type server struct {
	Addr string `toml:"addr"` // 监听地址
}

type log struct {
	Level  string `toml:"level"`  // debug/info/warn/error
	Format string `toml:"format"` // console/json
}

// Config cpca配置
type Config struct {
	Dict   dict   `toml:"dict"`
	Store  store  `toml:"store"`
	Server server `toml:"server"`
	Log    log    `toml:"log"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Dict:   dict{Path: "adcodes.csv", Encoding: "utf-8"},
		Server: server{Addr: ":8080"},
		Log:    log{Level: "info", Format: "console"},
	}
}

// Load 读取配置
// path 为空时跳过配置文件; envFiles 中不存在的文件忽略
func Load(path string, envFiles ...string) (*Config, error) {
	conf := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	env := make(map[string]string)
	for _, f := range envFiles {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range m {
			env[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}

	override(&conf.Dict.Path, lookup, EnvDictPath)
	override(&conf.Dict.Encoding, lookup, EnvDictEncoding)
	override(&conf.Store.Dir, lookup, EnvStoreDir)
	override(&conf.Server.Addr, lookup, EnvAddr)
	override(&conf.Log.Level, lookup, EnvLogLevel)
	override(&conf.Log.Format, lookup, EnvLogFormat)
	return conf, nil
}

func override(dst *string, lookup func(string) (string, bool), key string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}
