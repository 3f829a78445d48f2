package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <session>",
	Short: "Export a saved session as a PDF sheet",
	Long: `Export a saved session as a PDF sheet. Without --out the sheet is
written to the export directory under the hero's default sheet name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			if err := openSession(ctx, a, args[0], false); err != nil {
				return err
			}

			out, err := a.service.ExportSheet(ctx, &builder.ExportSheetInput{Path: exportOut})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "PDF file to write")
}
