package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"update-vendor-files/internal/app"
)

type extractOptions struct {
	packOptions
	deviceOptions
	OutputDir string
}

func newExtractCommand() *cobra.Command {
	opts := extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract <pack>",
		Short: "Write the device-description files of a pack into a directory",
		Args:  packArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), cmd, args[0], opts)
		},
	}
	addPackFlags(cmd, &opts.packOptions)
	addDeviceFlags(cmd, &opts.deviceOptions)
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory receiving the device files")
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	return cmd
}

func runExtract(ctx context.Context, cmd *cobra.Command, pack string, opts extractOptions) error {
	service := newAppService(cmd, opts.packOptions)
	result, err := service.Extract(ctx, app.ExtractRequest{
		ListRequest: listRequest(cmd, pack, opts.packOptions, opts.deviceOptions),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
	})
	if err != nil {
		return err
	}
	for _, path := range result.Paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
