// Command sdkgen renders typed Go clients and ABI resources from the
// contracts listed in sdkgen.yaml.
package main

func main() {
	Execute()
}
