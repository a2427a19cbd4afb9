package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aaschema/internal/format"
	"aaschema/internal/schema"
)

var headerFile string

var resolveCmd = &cobra.Command{
	Use:     "resolve [column ...]",
	Short:   "Explain how each column is classified",
	GroupID: mappingGroup,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if headerFile != "" {
			src, err := readFile(headerFile)
			if err != nil {
				return err
			}
			names = append(names, src.Columns...)
		}
		if len(names) == 0 {
			return fmt.Errorf("pass column names or --header")
		}

		f, err := GetFormat()
		if err != nil {
			return err
		}
		t, err := format.NewTranslator(f, zap.S())
		if err != nil {
			return err
		}
		tables, err := GetTables()
		if err != nil {
			return err
		}
		resolver := schema.NewResolver(tables, zap.S())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "COLUMN\tRULE\tPOST\tCANONICAL\t%s\n", f)
		for _, name := range names {
			res := resolver.Resolve(name)
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n",
				res.Name, res.Rule, res.Post, res.Descriptor, t.Translate(res.Descriptor))
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&headerFile, "header", "", "also resolve every column of this column_headers.tsv")
}
