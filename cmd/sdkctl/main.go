// Command sdkctl inspects a deployed oracle: proxy implementations, backend
// module and dispute listings, and contract state read through the generated
// clients. "sdkctl serve" exposes the same views over HTTP.
package main

func main() {
	Execute()
}
