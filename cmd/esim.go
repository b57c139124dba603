/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/esimdash/esimdash-cli/cmd/logger"
	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/esimdash/esimdash-cli/internal/session"
	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"
)

var (
	outputJSON bool
	startDate  string
	endDate    string
)

var esimCmd = &cobra.Command{
	Use:     "esim",
	Aliases: []string{"esims"},
	Short:   "Browse ESIMs",
}

var esimListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List ESIMs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := tokenStore()
		if err != nil {
			return err
		}
		if !session.Present(store) {
			return session.ErrNoToken
		}

		dv := view.NewDashboardView(newAPI(), store, logger.Logger)
		fmt.Println(view.LoadingMessage)
		dv.Load(cmd.Context())

		switch {
		case dv.Phase() == view.PhaseError:
			return errors.New(dv.Error)
		case outputJSON:
			return printJSON(dv.Records)
		case dv.Empty():
			fmt.Println(view.EmptyMessage)
			return nil
		}

		fmt.Println(renderTable(dv.Table()))
		return nil
	},
}

var esimShowCmd = &cobra.Command{
	Use:   "show [esim id]",
	Short: "Show one ESIM",
	Args:  cobra.ExactArgs(1),
	RunE: detailCommand(func(ctx context.Context, a api.API, token, id string) (*models.ESIMList, error) {
		return a.GetESIM(ctx, token, id)
	}),
}

var esimLocationCmd = &cobra.Command{
	Use:   "location [esim id]",
	Short: "Show the last known location of an ESIM",
	Args:  cobra.ExactArgs(1),
	RunE: detailCommand(func(ctx context.Context, a api.API, token, id string) (*models.ESIMList, error) {
		return a.GetESIMLocation(ctx, token, id)
	}),
}

var esimUsageCmd = &cobra.Command{
	Use:   "usage [esim id]",
	Short: "Show data usage of an ESIM",
	Args:  cobra.ExactArgs(1),
	Example: `  esimdash esim usage 8944500102198304826
  esimdash esim usage 8944500102198304826 --start 2024-01-01 --end 2024-01-31`,
	RunE: detailCommand(func(ctx context.Context, a api.API, token, id string) (*models.ESIMList, error) {
		period := models.UsagePeriod{StartDate: startDate, EndDate: endDate}
		if err := period.Validate(); err != nil {
			return nil, err
		}
		return a.GetESIMUsage(ctx, token, id, period)
	}),
}

type detailFetcher func(ctx context.Context, a api.API, token, id string) (*models.ESIMList, error)

func detailCommand(fetch detailFetcher) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := tokenStore()
		if err != nil {
			return err
		}
		token, err := store.Get()
		if err != nil {
			return err
		}

		list, err := fetch(cmd.Context(), newAPI(), token, args[0])
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("esim %s not found", args[0])
			}
			return err
		}

		if outputJSON {
			return printJSON(list.Records)
		}
		if list.Len() == 0 {
			fmt.Println("No data")
			return nil
		}
		for i, rec := range list.Records {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(renderRecord(rec))
		}
		return nil
	}
}

func renderTable(t view.Table) string {
	tw := table.NewWriter()
	header := table.Row{}
	for _, h := range t.Header {
		header = append(header, h)
	}
	tw.AppendHeader(header)
	for _, r := range t.Rows {
		row := table.Row{}
		for _, v := range r {
			row = append(row, v)
		}
		tw.AppendRow(row)
	}
	tw.SetStyle(table.StyleLight)
	return tw.Render()
}

// renderRecord prints one record as a key/value table.
func renderRecord(rec models.Record) string {
	tw := table.NewWriter()
	for _, f := range rec.Fields {
		tw.AppendRow(table.Row{strings.ToUpper(strings.ReplaceAll(f.Key, "_", " ")), models.Stringify(f.Value)})
	}
	tw.SetStyle(table.StyleLight)
	return tw.Render()
}

func printJSON(records []models.Record) error {
	f := colorjson.NewFormatter()
	f.Indent = 2
	b, err := formatJSON(f, records)
	if err != nil {
		return fmt.Errorf("failed to format json: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func init() {
	esimCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print records as colorized JSON")
	esimUsageCmd.Flags().StringVar(&startDate, "start", "", "start of the usage period (YYYY-MM-DD)")
	esimUsageCmd.Flags().StringVar(&endDate, "end", "", "end of the usage period (YYYY-MM-DD)")

	esimCmd.AddCommand(esimListCmd, esimShowCmd, esimLocationCmd, esimUsageCmd)
	rootCmd.AddCommand(esimCmd)
}
