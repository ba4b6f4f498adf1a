// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/ctverify/config"
	"github.com/google/ctverify/merkletree"
	"github.com/google/ctverify/server"
	"github.com/google/ctverify/verifier"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var listenAddr string

func init() {
	cmd := cobra.Command{
		Use:   "serve --config=file [--listen=addr]",
		Short: "Serve verification of every log in --config over HTTP",
		Args:  cobra.MaximumNArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go awaitSignal(cancel)
			if err := runServe(ctx); err != nil {
				klog.Exitf("Error running server: %v", err)
			}
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "address:port to listen for requests on, overriding the config file")
	rootCmd.AddCommand(&cmd)
}

// runServe runs the serve command until ctx is done.
func runServe(ctx context.Context) error {
	if configFile == "" {
		return fmt.Errorf("--config must not be empty")
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	logs, err := cfg.Verifiers(
		verifier.WithConsistencyChecker(merkletree.NewSHA256ConsistencyVerifier()),
		verifier.WithMetrics(verifier.NewMetrics(reg)))
	if err != nil {
		return err
	}
	addr := cfg.Server.Listen
	if listenAddr != "" {
		addr = listenAddr
	}
	klog.Infof("Serving %d logs", len(logs))
	srv := server.New(server.Options{
		Logs:              logs,
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
		Burst:             cfg.Server.Burst,
		CacheSize:         cfg.Server.CacheSize,
		CacheTTL:          cfg.Server.CacheTTL,
		CORSOrigins:       cfg.Server.CORS,
		Gatherer:          reg,
	})
	return srv.ListenAndServe(ctx, addr)
}

// awaitSignal waits for standard termination signals, then runs the given
// function; it should be run as a separate goroutine.
func awaitSignal(doneFn func()) {
	// Arrange notification for the standard set of signals used to terminate a server
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigs
	klog.Warningf("Signal received: %v", sig)
	klog.Flush()

	doneFn()
}
