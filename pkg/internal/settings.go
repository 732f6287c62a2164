package pkg

import (
	"strings"

	"github.com/spf13/viper"
)

// SetSettingsDefaults registers the fallback values used when settings.toml
// or the environment does not provide a key.
func SetSettingsDefaults() {
	viper.SetDefault("bind", "0.0.0.0:8000")
	viper.SetDefault("grpc_bind", "0.0.0.0:7001")
	viper.SetDefault("media.path", "./media")
	viper.SetDefault("media.url_prefix", "/media")
	viper.SetDefault("pdf.font_family", "DejaVu")
	viper.SetDefault("pdf.font_size", 16)
	viper.SetDefault("security.token_ttl", "720h")
	viper.SetDefault("pagination.page_size", 6)
	viper.SetDefault("pagination.max_page_size", 100)
	viper.SetDefault("cors.allow_origins", "*")
}

func LoadSettings() error {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("foodgram")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetSettingsDefaults()

	return viper.ReadInConfig()
}
