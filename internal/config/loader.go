package config

import (
	"os"

	"github.com/spf13/viper"
)

// LoadConfig 从文件加载配置。configPath 为空时按默认路径搜索；
// 找不到配置文件不算错误，直接使用默认配置。
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		// 搜索配置文件
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(".smartmd2img")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		// 指定了路径但文件不存在时同样回退默认配置
		if configPath != "" && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
