package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigServer настройки HTTP сервера
type ConfigServer struct {
	PortHTTP                int `mapstructure:"port_http"`
	HTTPReadTimeout         int `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int `mapstructure:"graceful_shutdown_timeout"`
}

// ConfigHTTP настройки HTTP middleware
type ConfigHTTP struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
	AuthToken          string `mapstructure:"auth_token"` // пустой - без авторизации
}

// ConfigSessions настройки экранных сессий
type ConfigSessions struct {
	MaxSessions int `mapstructure:"max_sessions"` // 0 - без ограничения
}

// Config основная структура конфигурации
type Config struct {
	Logger   *ConfigLogger   `mapstructure:"logger"`
	Server   *ConfigServer   `mapstructure:"server"`
	HTTP     *ConfigHTTP     `mapstructure:"http"`
	Sessions *ConfigSessions `mapstructure:"sessions"`
}

// Default возвращает конфигурацию по умолчанию (используется без файла конфигурации)
func Default() *Config {
	return &Config{
		Logger: &ConfigLogger{Level: "info"},
		Server: &ConfigServer{
			PortHTTP:                8080,
			HTTPReadTimeout:         10,
			HTTPWriteTimeout:        10,
			HTTPIdleTimeout:         60,
			HTTPReadHeaderTimeout:   5,
			GracefulShutdownTimeout: 10,
		},
		HTTP: &ConfigHTTP{
			CORSAllowedOrigins: "*",
			CORSMaxAge:         86400,
			RateLimitRPS:       100,
			RateLimitBurst:     10,
		},
		Sessions: &ConfigSessions{MaxSessions: 0},
	}
}

// FillDefaults заполняет отсутствующие секции значениями по умолчанию
func (c *Config) FillDefaults() {
	def := Default()
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	if c.Server == nil {
		c.Server = def.Server
	}
	if c.HTTP == nil {
		c.HTTP = def.HTTP
	}
	if c.Sessions == nil {
		c.Sessions = def.Sessions
	}
}
