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

// Package merkletree checks RFC 6962 Merkle tree consistency proofs.
package merkletree

import (
	"crypto/sha256"

	"github.com/transparency-dev/merkle"
)

// Domain separation prefixes for RFC 6962 tree hashing.
const (
	LeafPrefix = 0x00
	NodePrefix = 0x01
)

// HasherFunc takes a slice of bytes and returns a cryptographic hash of those bytes.
type HasherFunc func([]byte) []byte

// SHA256 is the HasherFunc used by RFC 6962 logs.
func SHA256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// TreeHasher performs the various hashing operations required when manipulating MerkleTrees.
type TreeHasher struct {
	fn   HasherFunc
	size int
}

var _ merkle.LogHasher = (*TreeHasher)(nil)

// NewTreeHasher returns a new TreeHasher based on the passed in hash.
func NewTreeHasher(h HasherFunc) *TreeHasher {
	return &TreeHasher{fn: h, size: len(h(nil))}
}

// EmptyRoot returns the hash of an empty tree.
func (h *TreeHasher) EmptyRoot() []byte {
	return h.fn([]byte{})
}

// HashLeaf returns the hash of the passed in leaf, after applying domain separation.
func (h *TreeHasher) HashLeaf(leaf []byte) []byte {
	return h.fn(append([]byte{LeafPrefix}, leaf...))
}

// HashChildren returns the merkle hash of the two passed in children.
func (h *TreeHasher) HashChildren(left, right []byte) []byte {
	b := make([]byte, 0, 1+len(left)+len(right))
	b = append(b, NodePrefix)
	b = append(b, left...)
	b = append(b, right...)
	return h.fn(b)
}

// Size returns the number of bytes in a hash.
func (h *TreeHasher) Size() int {
	return h.size
}
