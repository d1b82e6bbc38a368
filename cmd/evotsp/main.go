// Command evotsp runs steady-state evolutionary experiments on an asymmetric
// travelling salesman instance and writes CSV and HTML reports.
//
// Usage:
//
//	evotsp run --data datasets/br17.xml --experiments 30 --randomize
//	evotsp run --config run.yaml --exploit --metrics-addr :9090
//	evotsp config > run.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
