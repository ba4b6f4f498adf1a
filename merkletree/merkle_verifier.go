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

package merkletree

import (
	"errors"
	"fmt"

	ct "github.com/google/ctverify"
	"github.com/transparency-dev/merkle"
	"github.com/transparency-dev/merkle/proof"
)

// ConsistencyVerifier checks consistency proofs between two tree heads.
type ConsistencyVerifier struct {
	hasher merkle.LogHasher
}

// NewConsistencyVerifier returns a ConsistencyVerifier for a tree based on
// the passed in hasher.
func NewConsistencyVerifier(h HasherFunc) *ConsistencyVerifier {
	return &ConsistencyVerifier{hasher: NewTreeHasher(h)}
}

// NewSHA256ConsistencyVerifier returns a ConsistencyVerifier for RFC 6962
// SHA-256 trees.
func NewSHA256ConsistencyVerifier() *ConsistencyVerifier {
	return NewConsistencyVerifier(SHA256)
}

// VerifyConsistency reports whether proof shows that the tree of newSize
// with root newRoot extends the tree of oldSize with root oldRoot.
//
// A well-formed proof whose recomputed roots differ from the given ones
// yields false. Sizes that go backwards, or a proof of the wrong shape for
// the sizes, give a *ct.ConsistencyError.
func (v *ConsistencyVerifier) VerifyConsistency(oldSize, newSize uint64, oldRoot, newRoot []byte, proofHashes [][]byte) (bool, error) {
	if oldSize > newSize {
		return false, &ct.ConsistencyError{Msg: fmt.Sprintf("old tree size %d is larger than new tree size %d", oldSize, newSize)}
	}
	for i, h := range proofHashes {
		if len(h) != v.hasher.Size() {
			return false, &ct.ConsistencyError{Msg: fmt.Sprintf("proof node %d has %d bytes, want %d", i, len(h), v.hasher.Size())}
		}
	}
	err := proof.VerifyConsistency(v.hasher, oldSize, newSize, proofHashes, oldRoot, newRoot)
	if err == nil {
		return true, nil
	}
	var mismatch proof.RootMismatchError
	if errors.As(err, &mismatch) {
		return false, nil
	}
	return false, &ct.ConsistencyError{Msg: "invalid consistency proof", Err: err}
}
