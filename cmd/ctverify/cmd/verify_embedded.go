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
	"fmt"
	"io"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func init() {
	cmd := cobra.Command{
		Use:     fmt.Sprintf("verify-embedded %s --cert_chain=file [--issuers=file]", keyFlags),
		Aliases: []string{"embedded"},
		Short:   "Verify the SCTs embedded in a certificate",
		Args:    cobra.MaximumNArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			v := mustLogVerifier()
			chain, err := loadChain(certChain, issuersFile)
			if err != nil {
				klog.Exitf("Failed to load chain: %v", err)
			}
			if err := runVerifyEmbedded(cmd.OutOrStdout(), v, chain); err != nil {
				exitWithDetails(err)
			}
		},
	}
	addChainFlags(&cmd)
	rootCmd.AddCommand(&cmd)
}

// runVerifyEmbedded runs the verify-embedded command. SCTs from other logs
// are listed but do not count as failures.
func runVerifyEmbedded(w io.Writer, v *verifier.LogVerifier, chain []verifier.Certificate) error {
	results, err := v.VerifyEmbeddedSCTs(chain)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "Certificate has no embedded SCTs")
		return nil
	}
	invalid := 0
	for i, res := range results {
		status := "OK"
		switch {
		case res.SCT.LogID != v.Key().LogID():
			status = "OTHER LOG"
		case !res.Valid:
			status = "INVALID"
			invalid++
		}
		fmt.Fprintf(w, "SCT %d: %s: log %v, issued at %v\n", i, status, res.SCT.LogID, ct.TimestampToTime(res.SCT.Timestamp))
	}
	if invalid > 0 {
		return &ct.SignatureError{Msg: fmt.Sprintf("%d of %d embedded SCTs failed verification", invalid, len(results))}
	}
	return nil
}
