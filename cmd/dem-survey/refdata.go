package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/contract"
	"github.com/jateonwr/dem-survey/pkg/model"
	"github.com/jateonwr/dem-survey/pkg/remote"
)

func newRefDataCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "refdata",
		Short: "Fetch and print the basin and province lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.Config()
			if err != nil {
				return err
			}
			logger := env.Logger()
			client, err := remote.New(cfg.Endpoint, remote.WithTimeout(cfg.Timeout()), remote.WithLogger(logger))
			if err != nil {
				return err
			}
			ref, err := client.FetchReferenceData(cmd.Context())
			if err != nil {
				return err
			}
			api, err := contract.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := api.ValidateReferenceData(ref); err != nil {
				logger.Warn("reference data does not match the contract", zap.Error(err))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), referenceTable(ref))
			return err
		},
	}
}

func referenceTable(ref model.ReferenceData) *uitable.Table {
	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold("#"), bold("ลุ่มน้ำ"), bold("จังหวัด"))
	rows := len(ref.Basins)
	if len(ref.Provinces) > rows {
		rows = len(ref.Provinces)
	}
	for i := 0; i < rows; i++ {
		tbl.AddRow(strconv.Itoa(i+1), at(ref.Basins, i), at(ref.Provinces, i))
	}
	return tbl
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
