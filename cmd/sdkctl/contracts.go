package main

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"oracle-sdk/pkg/apperrors"
	"oracle-sdk/pkg/bindings/erc20"
	"oracle-sdk/pkg/bindings/oracle"
	"oracle-sdk/pkg/contract"
	"oracle-sdk/pkg/format"
	"oracle-sdk/pkg/proxy"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List configured contracts and their implementations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configured := cfg.Contracts.Addresses()
		names := make([]string, 0, len(configured))
		for name := range configured {
			names = append(names, name)
		}
		sort.Strings(names)

		addresses := make([]common.Address, len(names))
		for i, name := range names {
			address, err := proxy.ParseAddress(configured[name])
			if err != nil {
				return fmt.Errorf("contract %s: %w", name, err)
			}
			addresses[i] = address
		}

		resolver, err := newResolver(cfg, appLogger)
		if err != nil {
			return err
		}

		type row struct {
			Name           string `json:"name"`
			Address        string `json:"address"`
			Implementation string `json:"implementation,omitempty"`
			IsProxy        bool   `json:"isProxy"`
			Error          string `json:"error,omitempty"`
		}
		rows := make([]row, len(names))
		for i, res := range resolver.ResolveAll(cmd.Context(), addresses) {
			rows[i] = row{Name: names[i], Address: addresses[i].Hex()}
			if res.Err != nil {
				rows[i].Error = res.Err.Error()
				continue
			}
			rows[i].IsProxy = res.Resolution.IsProxy
			rows[i].Implementation = res.Resolution.Implementation.Hex()
		}
		return printJSON(cmd.OutOrStdout(), rows)
	},
}

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Read the Oracle contract",
}

var requestsPage struct {
	Start uint64
	Batch uint64
}

var oracleRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List request ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, address, err := dialContract(cmd.Context(), "oracle", cfg.Contracts.Oracle)
		if err != nil {
			return err
		}
		defer backend.Close()

		client, err := oracle.NewOracleReadOnlyClient(address, backend, contract.WithLogger(appLogger))
		if err != nil {
			return err
		}

		total, err := client.TotalRequestCount(cmd.Context())
		if err != nil {
			return err
		}
		page, err := client.ListRequestIds(cmd.Context(), oracle.ListRequestIdsRequest{
			StartFrom: new(big.Int).SetUint64(requestsPage.Start),
			BatchSize: new(big.Int).SetUint64(requestsPage.Batch),
		})
		if err != nil {
			return err
		}

		ids := make([]common.Hash, len(page.List))
		for i, id := range page.List {
			ids[i] = common.Hash(id)
		}
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"total":      total.Result.String(),
			"requestIds": ids,
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Read the bond token",
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "balance <holder>",
	Short: "Print the bond token balance of holder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		holder, err := proxy.ParseAddress(args[0])
		if err != nil {
			return err
		}
		backend, address, err := dialContract(cmd.Context(), "bond_token", cfg.Contracts.BondToken)
		if err != nil {
			return err
		}
		defer backend.Close()

		client, err := erc20.NewERC20ReadOnlyClient(address, backend, contract.WithLogger(appLogger))
		if err != nil {
			return err
		}
		symbol, err := client.Symbol(cmd.Context())
		if err != nil {
			return err
		}
		decimals, err := client.Decimals(cmd.Context())
		if err != nil {
			return err
		}
		balance, err := client.BalanceOf(cmd.Context(), erc20.BalanceOfRequest{Account: holder})
		if err != nil {
			return err
		}

		short, _ := format.ShortAddress(holder.Hex(), 0, 0)
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"holder":  short,
			"token":   symbol.Result,
			"balance": format.FormatUnits(balance.Result, int32(decimals.Result)),
			"raw":     balance.Result.String(),
		})
	},
}

func init() {
	oracleRequestsCmd.Flags().Uint64Var(&requestsPage.Start, "start", 0, "first request index")
	oracleRequestsCmd.Flags().Uint64Var(&requestsPage.Batch, "batch", 20, "number of request ids")
	oracleCmd.AddCommand(oracleRequestsCmd)

	tokenCmd.AddCommand(tokenBalanceCmd)
}

// dialContract connects to the configured node and validates the configured address of name.
func dialContract(ctx context.Context, name, raw string) (*ethclient.Client, common.Address, error) {
	if raw == "" {
		return nil, common.Address{}, fmt.Errorf("%w: no address configured for %s", apperrors.ErrInvalidInput, name)
	}
	address, err := proxy.ParseAddress(raw)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("contract %s: %w", name, err)
	}
	backend, err := contract.Dial(ctx, cfg.RPC.URL)
	if err != nil {
		return nil, common.Address{}, err
	}
	return backend, address, nil
}
