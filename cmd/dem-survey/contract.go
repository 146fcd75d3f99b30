package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/jateonwr/dem-survey/pkg/contract"
)

func newContractCommand() *cobra.Command {
	var operations bool
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Print the endpoint contract (OpenAPI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !operations {
				_, err := out.Write(contract.Raw())
				return err
			}
			api, err := contract.Load(cmd.Context())
			if err != nil {
				return err
			}
			bold := color.New(color.Bold).SprintFunc()
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("Operation"), bold("Method"), bold("Path"), bold("Summary"))
			for _, op := range api.Operations() {
				tbl.AddRow(op.ID, op.Method, op.Path, op.Summary)
			}
			_, err = fmt.Fprintf(out, "%s\n%s\n", bold(api.Title()), tbl)
			return err
		},
	}
	cmd.Flags().BoolVar(&operations, "operations", false, "list operations instead of printing the document")
	return cmd
}
