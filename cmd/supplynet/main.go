// Command supplynet analyzes logistics networks from the command line.
//
// Networks come from a YAML/JSON file, a dataset saved in the local SQLite
// repository, or the built-in sample. Results are printed as JSON.
//
//	supplynet analyze --file network.yaml
//	supplynet routes --from supplier_asia_1 --to store_west_1
//	supplynet import network.yaml --name west
//	supplynet datasets
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
