package entity

// Manifest describes what the generator produces.
type Manifest struct {
	// Runtime is the import path prefix of the SDK runtime packages (contract, hooks).
	Runtime   string
	Resources *ResourcesTarget
	Contracts []ContractTarget
}

// ResourcesTarget is the output of the ABI resources generator.
type ResourcesTarget struct {
	Package string
	Output  string
}

// ContractTarget is one contract binding to generate.
type ContractTarget struct {
	Name    string
	ABIPath string
	Package string
	Output  string
	Hooks   bool
}

// ContractABI is a loaded ABI document.
type ContractABI struct {
	Name    string
	Entries []Entry
	// Raw is the compacted bare ABI array.
	Raw []byte
}
