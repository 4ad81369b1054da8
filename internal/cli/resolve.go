package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"update-vendor-files/internal/types"
)

func newResolveCommand() *cobra.Command {
	opts := packOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <pack>",
		Short: "Resolve the pack version and download URL without downloading",
		Args:  packArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, args[0], opts)
		},
	}
	addPackFlags(cmd, &opts)
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, pack string, opts packOptions) error {
	service := newAppService(cmd, opts)
	result, err := service.Resolve(ctx, resolveRequest(cmd, pack, opts))
	if err != nil {
		return err
	}
	format := types.OutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	if format == types.OutputFormatYAML {
		return service.Reports.WriteReport(cmd.OutOrStdout(), format, result.Report(nil))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pack: %s\n", result.Pack.Family.DownloadName())
	fmt.Fprintf(out, "version: %s\n", result.Version)
	fmt.Fprintf(out, "url: %s\n", result.URL)
	return nil
}
