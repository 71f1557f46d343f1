package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbshop/dumpmigrate/internal/etl"
)

type MigrateOptions struct {
	ClientSQL  string
	ProductSQL string
	RecordsSQL string
	BatchSize  int
	Reset      bool
}

// Default dump filenames, resolved under DUMP_DIR when the flags are
// left empty.
const (
	DefaultClientDump  = "natural_beauty_client.sql"
	DefaultProductDump = "natural_beauty_product.sql"
	DefaultRecordsDump = "natural_beauty_user_purchase_record.sql"
)

func NewMigrateCmd() *cobra.Command {
	opts := &MigrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Parse the three dump files and upsert their rows into MongoDB",
		RunE: func(c *cobra.Command, args []string) error {
			return runMigration(c.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ClientSQL, "client-sql", "", "Path to the client dump (default DUMP_DIR/"+DefaultClientDump+")")
	cmd.Flags().StringVar(&opts.ProductSQL, "product-sql", "", "Path to the product dump (default DUMP_DIR/"+DefaultProductDump+")")
	cmd.Flags().StringVar(&opts.RecordsSQL, "records-sql", "", "Path to the purchase record dump (default DUMP_DIR/"+DefaultRecordsDump+")")
	cmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "b", etl.DefaultBatchSize, "Maximum rows per batch commit")
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "Clear the target collections before importing (destructive)")

	return cmd
}

func NewClearCmd() *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "clear <collection>",
		Short: "Delete every document from a collection (destructive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runClear(c.Context(), args[0], pageSize)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", etl.DefaultBatchSize, "Documents fetched per delete page")

	return cmd
}
