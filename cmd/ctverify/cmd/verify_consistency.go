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
	"encoding/json"
	"fmt"
	"io"
	"os"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"github.com/spf13/cobra"
)

var (
	oldSTHFile string
	newSTHFile string
	proofFile  string
)

func init() {
	cmd := cobra.Command{
		Use:     fmt.Sprintf("verify-consistency %s --old_sth=file --new_sth=file [--proof=file]", keyFlags),
		Aliases: []string{"consistency"},
		Short:   "Verify two tree heads of a log and the consistency proof between them",
		Args:    cobra.MaximumNArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runVerifyConsistency(cmd.OutOrStdout(), mustLogVerifier(), oldSTHFile, newSTHFile, proofFile); err != nil {
				exitWithDetails(err)
			}
		},
	}
	cmd.Flags().StringVar(&oldSTHFile, "old_sth", "", "Name of file containing the older tree head as get-sth JSON")
	cmd.Flags().StringVar(&newSTHFile, "new_sth", "", "Name of file containing the newer tree head as get-sth JSON")
	cmd.Flags().StringVar(&proofFile, "proof", "", "Name of file containing a get-sth-consistency JSON response")
	rootCmd.AddCommand(&cmd)
}

// runVerifyConsistency runs the verify-consistency command.
func runVerifyConsistency(w io.Writer, v *verifier.LogVerifier, oldFile, newFile, proofFile string) error {
	oldSTH, err := readSTH(oldFile)
	if err != nil {
		return err
	}
	newSTH, err := readSTH(newFile)
	if err != nil {
		return err
	}
	var proof [][]byte
	if proofFile != "" {
		data, err := os.ReadFile(proofFile)
		if err != nil {
			return err
		}
		var rsp ct.GetSTHConsistencyResponse
		if err := json.Unmarshal(data, &rsp); err != nil {
			return &ct.EncodingError{Msg: fmt.Sprintf("%s is not a get-sth-consistency response", proofFile), Err: err}
		}
		proof = rsp.Consistency
		if proof == nil {
			proof = [][]byte{}
		}
	}

	ok, err := v.CheckConsistency(oldSTH, newSTH, proof)
	if err != nil {
		return err
	}
	if !ok {
		return &ct.ConsistencyError{Msg: fmt.Sprintf("proof does not link hash %x @%d to hash %x @%d", oldSTH.SHA256RootHash, oldSTH.TreeSize, newSTH.SHA256RootHash, newSTH.TreeSize)}
	}
	if proof == nil {
		fmt.Fprintf(w, "Verified tree heads @%d and @%d and their order; no proof given\n", oldSTH.TreeSize, newSTH.TreeSize)
		return nil
	}
	fmt.Fprintf(w, "Verified that hash %x @%d + proof = hash %x @%d\n", oldSTH.SHA256RootHash, oldSTH.TreeSize, newSTH.SHA256RootHash, newSTH.TreeSize)
	return nil
}
