package main

import (
	"github.com/spf13/cobra"

	"oracle-sdk/pkg/api"
	"oracle-sdk/pkg/proxy"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Query oracle modules known to the backend",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cfg, appLogger)
		if err != nil {
			return err
		}
		modules, err := client.ListModules(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), modules)
	},
}

var modulesGetCmd = &cobra.Command{
	Use:   "get <address>",
	Short: "Show one module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := proxy.ParseAddress(args[0])
		if err != nil {
			return err
		}
		client, err := newAPIClient(cfg, appLogger)
		if err != nil {
			return err
		}
		module, err := client.GetModule(cmd.Context(), address)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), module)
	},
}

var disputeFilter struct {
	RequestID string
	Status    string
	Page      int
	Limit     int
}

var disputesCmd = &cobra.Command{
	Use:   "disputes",
	Short: "Query disputes known to the backend",
}

var disputesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List disputes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cfg, appLogger)
		if err != nil {
			return err
		}
		disputes, err := client.ListDisputes(cmd.Context(), api.DisputeFilter{
			RequestID: disputeFilter.RequestID,
			Status:    api.DisputeStatus(disputeFilter.Status),
			Page:      disputeFilter.Page,
			Limit:     disputeFilter.Limit,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), disputes)
	},
}

func init() {
	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesGetCmd)

	disputesListCmd.Flags().StringVar(&disputeFilter.RequestID, "request-id", "", "only disputes of this request")
	disputesListCmd.Flags().StringVar(&disputeFilter.Status, "status", "", "only disputes in this status (Active, Escalated, Won, Lost, NoResolution)")
	disputesListCmd.Flags().IntVar(&disputeFilter.Page, "page", 0, "page number")
	disputesListCmd.Flags().IntVar(&disputeFilter.Limit, "limit", 0, "page size")
	disputesCmd.AddCommand(disputesListCmd)
}
