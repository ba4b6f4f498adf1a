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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var sctFile string

func init() {
	cmd := cobra.Command{
		Use:     fmt.Sprintf("verify-sct %s --sct=file --cert_chain=file [--issuers=file]", keyFlags),
		Aliases: []string{"sct"},
		Short:   "Verify an SCT against the certificate chain it was issued for",
		Args:    cobra.MaximumNArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			v := mustLogVerifier()
			sct, err := readSCT(sctFile)
			if err != nil {
				exitWithDetails(err)
			}
			chain, err := loadChain(certChain, issuersFile)
			if err != nil {
				klog.Exitf("Failed to load chain: %v", err)
			}
			if err := runVerifySCT(cmd.OutOrStdout(), v, sct, chain); err != nil {
				exitWithDetails(err)
			}
		},
	}
	cmd.Flags().StringVar(&sctFile, "sct", "", "Name of file containing a TLS-encoded SCT or an add-chain JSON response")
	addChainFlags(&cmd)
	rootCmd.AddCommand(&cmd)
}

// runVerifySCT runs the verify-sct command.
func runVerifySCT(w io.Writer, v *verifier.LogVerifier, sct *ct.SignedCertificateTimestamp, chain []verifier.Certificate) error {
	if sct.LogID != v.Key().LogID() {
		fmt.Fprintf(w, "Warning: SCT names log %v, key is for log %v\n", sct.LogID, v.Key().LogID())
	}
	if err := v.VerifySCT(sct, chain); err != nil {
		return err
	}
	fmt.Fprintf(w, "Verified SCT from log %v issued at %v\n", sct.LogID, ct.TimestampToTime(sct.Timestamp))
	return nil
}

// readSCT reads an SCT either in add-chain JSON form or as TLS bytes.
func readSCT(filename string) (*ct.SignedCertificateTimestamp, error) {
	if filename == "" {
		return nil, fmt.Errorf("no SCT file specified with --sct: %w", ct.ErrInvalidArgument)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var rsp ct.AddChainResponse
		if err := json.Unmarshal(trimmed, &rsp); err != nil {
			return nil, &ct.EncodingError{Msg: fmt.Sprintf("%s is not an add-chain response", filename), Err: err}
		}
		return rsp.ToSignedCertificateTimestamp()
	}
	return ct.UnmarshalSCT(data)
}
