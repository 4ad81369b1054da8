package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"update-vendor-files/internal/adapters"
	"update-vendor-files/internal/app"
)

// packOptions are the flags shared by every command that resolves a pack.
type packOptions struct {
	BaseURL      string
	IndexURL     string
	VersionOrder string
	HTTPTimeout  int
	Format       string
}

func addPackFlags(cmd *cobra.Command, opts *packOptions) {
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", app.DefaultBaseURL, "Pack download base URL")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "", "Index page URL (defaults to the base URL)")
	cmd.Flags().StringVar(&opts.VersionOrder, "version-order", "numeric", "Version ordering (numeric, lexical, pep440)")
	cmd.Flags().IntVar(&opts.HTTPTimeout, "http-timeout", 60, "HTTP timeout in seconds")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, yaml)")
	_ = viper.BindPFlag("base_url", cmd.Flags().Lookup("base-url"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("version_order", cmd.Flags().Lookup("version-order"))
	_ = viper.BindPFlag("http_timeout_sec", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
}

type deviceOptions struct {
	Prefix string
	Suffix string
}

func addDeviceFlags(cmd *cobra.Command, opts *deviceOptions) {
	cmd.Flags().StringVar(&opts.Prefix, "device-prefix", "atdf/", "Archive directory holding device files")
	cmd.Flags().StringVar(&opts.Suffix, "device-suffix", ".atdf", "Device file extension")
	_ = viper.BindPFlag("device_prefix", cmd.Flags().Lookup("device-prefix"))
	_ = viper.BindPFlag("device_suffix", cmd.Flags().Lookup("device-suffix"))
}

func resolveRequest(cmd *cobra.Command, pack string, opts packOptions) app.ResolveRequest {
	return app.ResolveRequest{
		Pack:         pack,
		BaseURL:      resolveString(cmd, opts.BaseURL, "base_url", "base-url"),
		IndexURL:     resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		VersionOrder: resolveString(cmd, opts.VersionOrder, "version_order", "version-order"),
		Families:     viper.GetStringMapString("families"),
	}
}

func listRequest(cmd *cobra.Command, pack string, opts packOptions, device deviceOptions) app.ListRequest {
	return app.ListRequest{
		ResolveRequest: resolveRequest(cmd, pack, opts),
		DevicePrefix:   resolveString(cmd, device.Prefix, "device_prefix", "device-prefix"),
		DeviceSuffix:   resolveString(cmd, device.Suffix, "device_suffix", "device-suffix"),
	}
}

func newAppService(cmd *cobra.Command, opts packOptions) app.Service {
	return app.NewService(adapters.HTTPFetcherConfig{
		TimeoutSec: resolveInt(cmd, opts.HTTPTimeout, "http_timeout_sec", "http-timeout"),
		User:       viper.GetString("http_user"),
		APIKey:     viper.GetString("http_api_key"),
		UserAgent:  viper.GetString("user_agent"),
	})
}

func packArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pack identifier is required (<family> or <family>==<version>)")
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
