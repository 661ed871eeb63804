package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string
	LogLevel string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Storage   StorageConfigs
	File      FileConfigs
}

type ServerConfigs struct {
	Host string
	Port string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	// Driver is either mysql or sqlite.
	Driver     string
	SQLitePath string

	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type StorageConfigs struct {
	// Type is either local or s3.
	Type string

	Local LocalStorageConfigs
	S3    S3Configs
}

type LocalStorageConfigs struct {
	ImagesRoot string
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	Bucket         string
	SSLDisabled    bool
}

type FileConfigs struct {
	MaxSize int64
}

// Load reads the TOML file at path over sane defaults. An empty path keeps
// the defaults, so the binary runs without any config file.
func Load(path string) (*Configs, error) {
	cfg := &Configs{
		Env:      "local",
		LogLevel: "info",
		ApiServer: ServerConfigs{
			Host: "0.0.0.0",
			Port: "8000",
		},
		Database: DatabaseConfigs{
			Driver:     "sqlite",
			SQLitePath: "chirp.db",
		},
		Storage: StorageConfigs{
			Type: "local",
			Local: LocalStorageConfigs{
				ImagesRoot: "images",
			},
		},
		File: FileConfigs{
			MaxSize: 10 << 20,
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	return cfg, nil
}
