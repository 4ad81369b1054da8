package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"update-vendor-files/internal/adapters"
	"update-vendor-files/internal/app"
)

func newFamiliesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the known pack families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFamilies(cmd)
		},
	}
}

func runFamilies(cmd *cobra.Command) error {
	service := app.NewService(adapters.HTTPFetcherConfig{})
	result, err := service.ListFamilies(viper.GetStringMapString("families"))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, family := range result.Families {
		fmt.Fprintf(w, "%s\t%s\n", family.Name, family.DownloadName())
	}
	return w.Flush()
}
