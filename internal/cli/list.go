package cli

import (
	"context"

	"github.com/spf13/cobra"

	"update-vendor-files/internal/types"
)

type listOptions struct {
	packOptions
	deviceOptions
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list <pack>",
		Short: "List the device-description files of a pack",
		Args:  packArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd, args[0], opts)
		},
	}
	addPackFlags(cmd, &opts.packOptions)
	addDeviceFlags(cmd, &opts.deviceOptions)
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, pack string, opts listOptions) error {
	service := newAppService(cmd, opts.packOptions)
	result, err := service.List(ctx, listRequest(cmd, pack, opts.packOptions, opts.deviceOptions))
	if err != nil {
		return err
	}
	format := types.OutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	return service.Reports.WriteReport(cmd.OutOrStdout(), format, result.Resolved.Report(result.Controllers))
}
