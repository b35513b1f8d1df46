package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"oracle-sdk/pkg/proxy"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Resolve EIP-1967 proxies",
}

var proxyResolveCmd = &cobra.Command{
	Use:   "resolve <address>...",
	Short: "Print the implementation behind each address",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addresses := make([]common.Address, len(args))
		for i, arg := range args {
			address, err := proxy.ParseAddress(arg)
			if err != nil {
				return err
			}
			addresses[i] = address
		}

		resolver, err := newResolver(cfg, appLogger)
		if err != nil {
			return err
		}

		type row struct {
			proxy.Resolution
			Error string `json:"error,omitempty"`
		}
		results := resolver.ResolveAll(cmd.Context(), addresses)
		rows := make([]row, len(results))
		failed := 0
		for i, res := range results {
			rows[i] = row{Resolution: res.Resolution}
			if res.Err != nil {
				rows[i].Address = addresses[i]
				rows[i].Error = res.Err.Error()
				failed++
			}
		}
		if err := printJSON(cmd.OutOrStdout(), rows); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d addresses could not be resolved", failed, len(addresses))
		}
		return nil
	},
}

func init() {
	proxyCmd.AddCommand(proxyResolveCmd)
}
