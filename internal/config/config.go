package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultAddr = ":15470"

type Config struct {
	// Addr — адрес HTTP-сервера книги.
	Addr string `mapstructure:"APP_ADDR"`
	// Password — общий секрет комнаты; пустой — вход свободный.
	Password string `mapstructure:"APP_PASSWORD"`
	// Announce — объявлять ли сервер в локальной сети через mDNS.
	Announce bool `mapstructure:"APP_ANNOUNCE"`
	// DataDir — каталог клиентского кэша и настроек; пустой —
	// подкаталог friendread в пользовательском кэше.
	DataDir string `mapstructure:"APP_DATA_DIR"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Addr: %s\n", c.Addr))
	sb.WriteString(fmt.Sprintf("  Announce: %v\n", c.Announce))
	sb.WriteString(fmt.Sprintf("  DataDir: %s\n", c.DataDir))

	// пароль маскируем
	if c.Password != "" {
		sb.WriteString("  Password: ********\n")
	} else {
		sb.WriteString("  Password: (empty)\n")
	}

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_ADDR", "APP_PASSWORD", "APP_ANNOUNCE", "APP_DATA_DIR",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	v.SetDefault("APP_ADDR", DefaultAddr)
	v.SetDefault("APP_ANNOUNCE", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// CacheDir — каталог для bbolt-кэша клиента.
func (c *Config) CacheDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "friendread"), nil
}
