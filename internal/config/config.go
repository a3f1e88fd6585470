package config

import (
	"os"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port      string // サーバーポート（既定 5001）
	DBPath    string // SQLiteのDBファイル
	UploadDir string // 画像アップロード先
	StaticDir string // 固定HTMLの置き場所
}

// Loadは環境変数から読む。未設定は既定値。
func Load() Config {
	return Config{
		Port:      getenv("PORT", "5001"),
		DBPath:    getenv("DB_PATH", "shop.db"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		StaticDir: getenv("STATIC_DIR", "."),
	}
}

// Addr は ":5001" 形式のlistenアドレス
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
