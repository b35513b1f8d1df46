// Package bindings holds the generated clients of the protocol contracts.
// The ABIs live in abis/ at the repository root; regenerate after editing them.
package bindings

//go:generate go run oracle-sdk/cmd/sdkgen all --manifest ../../sdkgen.yaml
