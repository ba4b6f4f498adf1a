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

// Package cmd implements subcommands of ctverify, the command-line utility
// for checking data signed by CT logs.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/certificate-transparency-go/loglist3"
	ct "github.com/google/ctverify"
	"github.com/google/ctverify/config"
	"github.com/google/ctverify/merkletree"
	"github.com/google/ctverify/verifier"
	"github.com/google/ctverify/x509util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const keyFlags = "{--log_key file | --config file --log_name name | --log_list file --log_name name} [--strict_der]"

var (
	logKey      string
	configFile  string
	logList     string
	logName     string
	strictDER   bool
	certChain   string
	issuersFile string
)

func init() {
	klog.InitFlags(nil)
	// Add flags added with "flag" package, including klog, to Cobra flag set.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logKey, "log_key", "", "Name of file containing the log's PEM public key")
	flags.StringVar(&configFile, "config", "", "Name of YAML config file listing known logs")
	flags.StringVar(&logList, "log_list", "", "Name of file containing a v3 JSON log list")
	flags.StringVar(&logName, "log_name", "", "Name of the log in --config, or description of the log in --log_list, to use")
	flags.BoolVar(&strictDER, "strict_der", false, "Reject ECDSA signatures that are not canonical DER")
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ctverify",
	Short: "A command line verifier for data signed by Certificate Transparency logs",

	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		flag.Parse()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It needs to be called exactly once by main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		klog.Fatal(err)
	}
}

// exitWithDetails reports a failed verification with the kind of failure.
func exitWithDetails(err error) {
	klog.Exitf("%s: %v", ct.ErrorKind(err), err)
}

// logVerifier builds the verifier selected by the key flags.
func logVerifier() (*verifier.LogVerifier, error) {
	opts := []verifier.Option{verifier.WithConsistencyChecker(merkletree.NewSHA256ConsistencyVerifier())}
	if strictDER {
		opts = append(opts, verifier.WithStrictDER())
	}
	sources := 0
	for _, f := range []string{logKey, configFile, logList} {
		if f != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("use only one of --log_key, --config and --log_list")
	}
	switch {
	case logKey != "":
		data, err := os.ReadFile(logKey)
		if err != nil {
			return nil, err
		}
		key, err := ct.KeyDescriptorFromPEM(data)
		if err != nil {
			return nil, err
		}
		return verifier.New(key, opts...), nil
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if logName == "" {
			return nil, errors.New("--config needs --log_name")
		}
		lc, ok := cfg.Log(logName)
		if !ok {
			return nil, fmt.Errorf("no log named %q in %s", logName, configFile)
		}
		return lc.Verifier(opts...)
	case logList != "":
		key, err := keyFromLogList(logList, logName)
		if err != nil {
			return nil, err
		}
		return verifier.New(key, opts...), nil
	default:
		return nil, errors.New("no log key: use --log_key, or --config or --log_list with --log_name")
	}
}

// keyFromLogList finds the one log in the list whose description matches
// name and returns its key.
func keyFromLogList(filename, name string) (*ct.KeyDescriptor, error) {
	if name == "" {
		return nil, errors.New("--log_list needs --log_name")
	}
	llData, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read log list: %v", err)
	}
	ll, err := loglist3.NewFromJSON(llData)
	if err != nil {
		return nil, fmt.Errorf("failed to build log list: %v", err)
	}
	logs := ll.FindLogByName(name)
	if len(logs) == 0 {
		return nil, fmt.Errorf("no log with name like %q found in log list %q", name, filename)
	}
	if len(logs) > 1 {
		logNames := make([]string, len(logs))
		for i, log := range logs {
			logNames[i] = fmt.Sprintf("%q", log.Description)
		}
		return nil, fmt.Errorf("multiple logs with name like %q found in log list: %s", name, strings.Join(logNames, ","))
	}
	klog.V(1).Infof("Using key of log %q", logs[0].Description)
	return ct.KeyDescriptorFromDER(logs[0].Key)
}

func mustLogVerifier() *verifier.LogVerifier {
	v, err := logVerifier()
	if err != nil {
		klog.Exitf("Failed to load log key: %v", err)
	}
	return v
}

// loadChain reads the chain in filename and, if issuers is set, completes it
// from the certificates in that file.
func loadChain(filename, issuers string) ([]verifier.Certificate, error) {
	if filename == "" {
		return nil, errors.New("no certificate chain file specified with --cert_chain")
	}
	chain, err := x509util.ChainFromFile(filename)
	if err != nil {
		return nil, err
	}
	if issuers != "" {
		data, err := os.ReadFile(issuers)
		if err != nil {
			return nil, err
		}
		pool := x509util.NewIssuerPool()
		if !pool.AppendCertsFromPEM(data) {
			return nil, fmt.Errorf("%s: no usable certificates", issuers)
		}
		chain = pool.CompleteChain(chain)
		klog.V(1).Infof("Chain has %d certificates after adding issuers", len(chain))
	}
	return x509util.Chain(chain), nil
}

func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&certChain, "cert_chain", "", "Name of file containing certificate chain as concatenated PEM files, leaf first")
	cmd.Flags().StringVar(&issuersFile, "issuers", "", "Name of PEM file of extra issuers used to complete the chain")
}
