package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pricelens/pricelens"
	"github.com/pricelens/pricelens/internal/cmd/output"
	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/match"
)

// NewCompareCommand creates the compare command.
func (a *App) NewCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <source1.csv> <source2.csv>",
		Short: "Reconcile two catalogs and print summary figures",
		Args:  cobra.ExactArgs(2),
		Example: `  pricelens compare internal.csv supplier.csv
  pricelens compare internal.csv supplier.csv --threshold 90 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.reconcile(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(cmd, result.Summary())
		},
	}
}

// NewVendorsCommand creates the vendors command.
func (a *App) NewVendorsCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "vendors <source1.csv> <source2.csv>",
		Short: "Show the vendor match table",
		Args:  cobra.ExactArgs(2),
		Example: `  pricelens vendors internal.csv supplier.csv
  pricelens vendors internal.csv supplier.csv --status only_in_source2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.reconcile(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			rows := result.Vendors.Rows()
			if status != "" {
				parsed, err := match.ParseStatus(status)
				if err != nil {
					return err
				}
				rows = result.Vendors.ByStatus(parsed)
			}
			return a.render(cmd, vendorTable(rows))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status: matched, only_in_source1, only_in_source2")
	return cmd
}

// NewItemsCommand creates the items command.
func (a *App) NewItemsCommand() *cobra.Command {
	var status string
	var vendor string

	cmd := &cobra.Command{
		Use:   "items <source1.csv> <source2.csv>",
		Short: "Show the per-product match table with price comparison",
		Args:  cobra.ExactArgs(2),
		Example: `  pricelens items internal.csv supplier.csv
  pricelens items internal.csv supplier.csv --vendor "acme co"
  pricelens items internal.csv supplier.csv --status matched -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.reconcile(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			rows := result.Items.Rows()
			if vendor != "" {
				rows = result.Items.ByVendorKey(catalogs.NormalizeKey(vendor))
			}
			if status != "" {
				parsed, err := match.ParseStatus(status)
				if err != nil {
					return err
				}
				rows = filterItems(rows, parsed)
			}
			return a.render(cmd, itemTable(rows))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status: matched, only_in_source1, only_in_source2")
	cmd.Flags().StringVar(&vendor, "vendor", "", "filter by vendor name or key")
	return cmd
}

// NewDiscountsCommand creates the discounts command.
func (a *App) NewDiscountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discounts <source1.csv> <source2.csv> [vendor]",
		Short: "Detect multi-price products suggesting discounts",
		Long: `Discounts reports products a vendor lists at two or more distinct
prices within the same catalog. Run without a vendor to list the vendors
that qualify; name a vendor to see its per-product price spreads.`,
		Args: cobra.RangeArgs(2, 3),
		Example: `  pricelens discounts internal.csv supplier.csv
  pricelens discounts internal.csv supplier.csv "Acme Co"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.reconcile(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return a.render(cmd, qualifyingVendorTable(result.QualifyingVendors))
			}
			return a.render(cmd, discountTable(result.Discounts(args[2])))
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pricelens version %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", a.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s by %s\n", a.date, a.builtBy)
			fmt.Fprintf(cmd.OutOrStdout(), "go version: %s\n", runtime.Version())
		},
	}
}

// reconcile loads both catalogs and runs the pipeline.
func (a *App) reconcile(cmd *cobra.Command, path1, path2 string) (*pricelens.Result, error) {
	c1, err := catalogs.LoadFile(path1, "source1")
	if err != nil {
		return nil, err
	}
	c2, err := catalogs.LoadFile(path2, "source2")
	if err != nil {
		return nil, err
	}

	pipeline, err := a.Pipeline()
	if err != nil {
		return nil, err
	}
	return pipeline.Run(cmd.Context(), c1, c2)
}

// render writes data to stdout in the configured output format.
func (a *App) render(cmd *cobra.Command, data any) error {
	format := output.DetectFormat(a.config.Format)
	if _, err := output.ParseFormat(string(format)); err != nil {
		return err
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

func filterItems(rows []match.ItemMatch, status match.Status) []match.ItemMatch {
	filtered := make([]match.ItemMatch, 0, len(rows))
	for _, row := range rows {
		if row.Status == status {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
