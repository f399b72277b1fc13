package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	data := `
[mysql]
dsn = "user:pass@tcp(localhost:3306)/retail?parseTime=true"
automigrate = true
max_open_connections = 20
max_idle_connections = 5

[logger]
level = -4
add_source = true

[http]
port = "8081"
address = "0.0.0.0"
allowed_origins = ["https://admin.example.com"]

[stock_alert]
worker_interval = "30m"
threshold = 3
limit = 5
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/retail?parseTime=true", cfg.DB.DSN)
	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, 20, cfg.DB.MaxOpenConnections)
	assert.Equal(t, 5, cfg.DB.MaxIdleConnections)

	assert.Equal(t, -4, cfg.Logger.Level)
	assert.True(t, cfg.Logger.AddSource)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.HTTP.AllowedOrigins)

	assert.Equal(t, 30*time.Minute, cfg.StockAlert.WorkerInterval)
	assert.Equal(t, 3, cfg.StockAlert.Threshold)
	assert.Equal(t, 5, cfg.StockAlert.Limit)
}

func TestLoadConfigDSNFromEnv(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "stats")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "retail")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("[http]\nport = \"8081\"\n"), 0o600))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "stats:secret@tcp(db.internal:3306)/retail?charset=utf8&parseTime=true", cfg.DB.DSN)
}
