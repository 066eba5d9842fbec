package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration 支持"30s"风格字符串的时长配置项
type Duration time.Duration

// UnmarshalYAML 实现yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("解析时长配置失败: %w", err)
	}

	*d = Duration(parsed)
	return nil
}

// Config 应用配置
type Config struct {
	App struct {
		Name string `yaml:"name"`
		Env  string `yaml:"env"`
	} `yaml:"app"`

	API struct {
		Port string `yaml:"port"`
	} `yaml:"api"`

	Data struct {
		// Source 数据来源类型：excel 或 postgres
		Source string `yaml:"source"`
		File   string `yaml:"file"`
		// ReloadCron 非空时按该cron表达式定期重新加载数据
		ReloadCron string `yaml:"reload_cron"`

		Postgres struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			DBName   string `yaml:"dbname"`
			SSLMode  string `yaml:"sslmode"`
		} `yaml:"postgres"`
	} `yaml:"data"`

	LLM struct {
		APIKey  string   `yaml:"api_key"`
		APIURL  string   `yaml:"api_url"`
		Model   string   `yaml:"model"`
		Timeout Duration `yaml:"timeout"`
	} `yaml:"llm"`

	NATS struct {
		URL string `yaml:"url"`
	} `yaml:"nats"`
}

// DefaultConfig 返回带默认值的配置（环境变量覆盖后）
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	overrideFromEnv(config)
	return config
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	// 读取配置文件
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)

	// 环境变量覆盖
	overrideFromEnv(&config)

	return &config, nil
}

// applyDefaults 填充未设置项的默认值
func applyDefaults(config *Config) {
	if config.App.Name == "" {
		config.App.Name = "customer-query"
	}
	if config.API.Port == "" {
		// 默认5001端口，避免与macOS AirPlay接收器冲突
		config.API.Port = "5001"
	}
	if config.Data.Source == "" {
		config.Data.Source = "excel"
	}
	if config.Data.File == "" {
		config.Data.File = "data/customers.xlsx"
	}
	if config.Data.Postgres.Port == 0 {
		config.Data.Postgres.Port = 5432
	}
	if config.Data.Postgres.SSLMode == "" {
		config.Data.Postgres.SSLMode = "disable"
	}
	if config.LLM.APIURL == "" {
		config.LLM.APIURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"
	}
	if config.LLM.Model == "" {
		config.LLM.Model = "qwen-turbo"
	}
	if config.LLM.Timeout == 0 {
		config.LLM.Timeout = Duration(30 * time.Second)
	}
}

// overrideFromEnv 使用环境变量覆盖配置
func overrideFromEnv(config *Config) {
	// 应用名称
	if env := os.Getenv("APP_NAME"); env != "" {
		config.App.Name = env
	}

	// 环境
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Env = env
	}

	// API配置
	if env := os.Getenv("PORT"); env != "" {
		config.API.Port = env
	}

	// 数据源配置
	if env := os.Getenv("DATA_SOURCE"); env != "" {
		config.Data.Source = env
	}
	if env := os.Getenv("DATA_FILE"); env != "" {
		config.Data.File = env
	}
	if env := os.Getenv("RELOAD_CRON"); env != "" {
		config.Data.ReloadCron = env
	}

	// 数据库配置
	if env := os.Getenv("DB_HOST"); env != "" {
		config.Data.Postgres.Host = env
	}
	if env := os.Getenv("DB_PORT"); env != "" {
		var port int
		fmt.Sscanf(env, "%d", &port)
		if port > 0 {
			config.Data.Postgres.Port = port
		}
	}
	if env := os.Getenv("DB_USER"); env != "" {
		config.Data.Postgres.User = env
	}
	if env := os.Getenv("DB_PASSWORD"); env != "" {
		config.Data.Postgres.Password = env
	}
	if env := os.Getenv("DB_NAME"); env != "" {
		config.Data.Postgres.DBName = env
	}

	// 大模型配置
	if env := os.Getenv("DASHSCOPE_API_KEY"); env != "" {
		config.LLM.APIKey = env
	}
	if env := os.Getenv("LLM_API_URL"); env != "" {
		config.LLM.APIURL = env
	}
	if env := os.Getenv("LLM_MODEL"); env != "" {
		config.LLM.Model = env
	}

	// NATS配置
	if env := os.Getenv("NATS_URL"); env != "" {
		config.NATS.URL = env
	}
}

// GetDefaultConfigPath 获取默认配置文件路径
func GetDefaultConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 默认开发环境
	}

	return fmt.Sprintf("configs/%s/app.yaml", env)
}
