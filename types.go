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

// Package ct holds the RFC 6962 structures that a Certificate Transparency
// log signs, and the signature checks used to verify them.
package ct

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/certificate-transparency-go/tls"
)

///////////////////////////////////////////////////////////////////////////////
// Structures from RFC 6962; section numbers refer to that RFC.
///////////////////////////////////////////////////////////////////////////////

// LogEntryType represents the LogEntryType enum from section 3.1:
//
//	enum { x509_entry(0), precert_entry(1), (65535) } LogEntryType;
type LogEntryType tls.Enum // tls:"maxval:65535"

// LogEntryType constants from section 3.1.
const (
	X509LogEntryType    LogEntryType = 0
	PrecertLogEntryType LogEntryType = 1
)

func (e LogEntryType) String() string {
	switch e {
	case X509LogEntryType:
		return "X509LogEntryType"
	case PrecertLogEntryType:
		return "PrecertLogEntryType"
	default:
		return fmt.Sprintf("UnknownEntryType(%d)", e)
	}
}

// MerkleLeafType represents the MerkleLeafType enum from section 3.4:
//
//	enum { timestamped_entry(0), (255) } MerkleLeafType;
type MerkleLeafType tls.Enum // tls:"maxval:255"

// TimestampedEntryLeafType is the only leaf type defined by section 3.4.
const TimestampedEntryLeafType MerkleLeafType = 0

func (m MerkleLeafType) String() string {
	switch m {
	case TimestampedEntryLeafType:
		return "TimestampedEntryLeafType"
	default:
		return fmt.Sprintf("UnknownLeafType(%d)", m)
	}
}

// Version represents the Version enum from section 3.2:
//
//	enum { v1(0), (255) } Version;
type Version tls.Enum // tls:"maxval:255"

// V1 is the only protocol version defined by section 3.2.
const V1 Version = 0

func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	default:
		return fmt.Sprintf("UnknownVersion(%d)", v)
	}
}

// SignatureType differentiates STH signatures from SCT signatures; see
// section 3.2.
//
//	enum { certificate_timestamp(0), tree_hash(1), (255) } SignatureType;
type SignatureType tls.Enum // tls:"maxval:255"

// SignatureType constants from section 3.2.
const (
	CertificateTimestampSignatureType SignatureType = 0
	TreeHashSignatureType             SignatureType = 1
)

func (st SignatureType) String() string {
	switch st {
	case CertificateTimestampSignatureType:
		return "CertificateTimestamp"
	case TreeHashSignatureType:
		return "TreeHash"
	default:
		return fmt.Sprintf("UnknownSignatureType(%d)", st)
	}
}

// ASN1Cert holds the raw DER bytes of a certificate (section 3.1).
type ASN1Cert struct {
	Data []byte `tls:"minlen:1,maxlen:16777215"`
}

// LogID holds the SHA-256 hash of a log's DER SubjectPublicKeyInfo
// (section 3.2).
type LogID struct {
	KeyID [sha256.Size]byte
}

// String returns the base64 form used by log lists and the JSON API.
func (l LogID) String() string {
	return base64.StdEncoding.EncodeToString(l.KeyID[:])
}

// PreCert is the precertificate form that a log signs (section 3.2): the
// hash of the final issuer's key and the TBSCertificate with the poison
// extension removed.
type PreCert struct {
	IssuerKeyHash  [sha256.Size]byte
	TBSCertificate []byte `tls:"minlen:1,maxlen:16777215"`
}

// CTExtensions holds the raw bytes of the CtExtensions field (section 3.2).
type CTExtensions []byte // tls:"minlen:0,maxlen:65535"

// DigitallySigned is a local alias for tls.DigitallySigned so that it can
// carry JSON methods.
type DigitallySigned tls.DigitallySigned

// FromBase64String populates d from base64 encoded TLS bytes.
func (d *DigitallySigned) FromBase64String(b64 string) error {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return encodingErrorf(err, "failed to unbase64 DigitallySigned")
	}
	ds, err := UnmarshalDigitallySigned(raw)
	if err != nil {
		return err
	}
	*d = DigitallySigned(*ds)
	return nil
}

// Base64String returns the base64 form of the TLS encoding of d.
func (d DigitallySigned) Base64String() (string, error) {
	b, err := tls.Marshal(d)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d DigitallySigned) MarshalJSON() ([]byte, error) {
	b64, err := d.Base64String()
	if err != nil {
		return nil, err
	}
	return json.Marshal(b64)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *DigitallySigned) UnmarshalJSON(b []byte) error {
	var content string
	if err := json.Unmarshal(b, &content); err != nil {
		return encodingErrorf(err, "failed to unmarshal DigitallySigned")
	}
	return d.FromBase64String(content)
}

// SHA256Hash holds a SHA-256 digest, such as a tree root hash.
type SHA256Hash [sha256.Size]byte

// FromBase64String populates s from base64 data, which must decode to
// exactly 32 bytes.
func (s *SHA256Hash) FromBase64String(b64 string) error {
	bs, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return encodingErrorf(err, "failed to unbase64 SHA256Hash")
	}
	if len(bs) != sha256.Size {
		return encodingErrorf(nil, "invalid SHA256 length, expected %d but got %d", sha256.Size, len(bs))
	}
	copy(s[:], bs)
	return nil
}

// Base64String returns the base64 form of s.
func (s SHA256Hash) Base64String() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// MarshalJSON implements the json.Marshaler interface.
func (s SHA256Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Base64String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *SHA256Hash) UnmarshalJSON(b []byte) error {
	var content string
	if err := json.Unmarshal(b, &content); err != nil {
		return encodingErrorf(err, "failed to unmarshal SHA256Hash")
	}
	return s.FromBase64String(content)
}

// SignedTreeHead is a log's signed statement of its tree size and root hash
// at a point in time; see sections 3.5 and 4.3. Its JSON form matches the
// get-sth response, so a get-sth body decodes directly into it.
//
// TreeHeadSignature is kept as the TLS-encoded DigitallySigned the log sent;
// it is only decoded when the tree head is verified.
type SignedTreeHead struct {
	Version           Version    `json:"sth_version"`
	TreeSize          uint64     `json:"tree_size"`
	Timestamp         uint64     `json:"timestamp"` // ms since the epoch
	SHA256RootHash    SHA256Hash `json:"sha256_root_hash"`
	TreeHeadSignature []byte     `json:"tree_head_signature"`
}

func (s SignedTreeHead) String() string {
	return fmt.Sprintf("{TreeSize:%d Timestamp:%d SHA256RootHash:%s}", s.TreeSize, s.Timestamp, s.SHA256RootHash.Base64String())
}

// TimestampToTime converts a timestamp in the style of RFC 6962 (milliseconds
// since the epoch) to a time.Time.
func TimestampToTime(ts uint64) time.Time {
	secs := int64(ts / 1000)
	msecs := int64(ts % 1000)
	return time.Unix(secs, msecs*1000000)
}

// TreeHeadSignature is the structure over which an STH signature is
// computed; see section 3.5.
type TreeHeadSignature struct {
	Version        Version       `tls:"maxval:255"`
	SignatureType  SignatureType `tls:"maxval:255"` // == TreeHashSignatureType
	Timestamp      uint64
	TreeSize       uint64
	SHA256RootHash SHA256Hash
}

// SignedCertificateTimestamp is a log's promise to incorporate a
// (pre-)certificate; see sections 3.2, 4.1 and 4.2. The TLS encoding is the
// SerializedSCT form found in the embedded SCT list extension.
type SignedCertificateTimestamp struct {
	SCTVersion Version `tls:"maxval:255"`
	LogID      LogID
	Timestamp  uint64
	Extensions CTExtensions    `tls:"minlen:0,maxlen:65535"`
	Signature  DigitallySigned // over a TLS-encoded CertificateTimestamp
}

func (s SignedCertificateTimestamp) String() string {
	return fmt.Sprintf("{Version:%d LogId:%s Timestamp:%d Extensions:'%x' Signature:%v/%v}",
		s.SCTVersion, s.LogID, s.Timestamp, s.Extensions,
		s.Signature.Algorithm.Hash, s.Signature.Algorithm.Signature)
}

// CertificateTimestamp is the structure over which an SCT signature is
// computed; see section 3.2.
type CertificateTimestamp struct {
	SCTVersion    Version       `tls:"maxval:255"`
	SignatureType SignatureType `tls:"maxval:255"` // == CertificateTimestampSignatureType
	Timestamp     uint64
	EntryType     LogEntryType `tls:"maxval:65535"`
	X509Entry     *ASN1Cert    `tls:"selector:EntryType,val:0"`
	PrecertEntry  *PreCert     `tls:"selector:EntryType,val:1"`
	Extensions    CTExtensions `tls:"minlen:0,maxlen:65535"`
}

// TimestampedEntry is part of the MerkleTreeLeaf structure; see section 3.4.
type TimestampedEntry struct {
	Timestamp    uint64
	EntryType    LogEntryType `tls:"maxval:65535"`
	X509Entry    *ASN1Cert    `tls:"selector:EntryType,val:0"`
	PrecertEntry *PreCert     `tls:"selector:EntryType,val:1"`
	Extensions   CTExtensions `tls:"minlen:0,maxlen:65535"`
}

// MerkleTreeLeaf is the hash input for a leaf of a log's Merkle tree; see
// section 3.4.
type MerkleTreeLeaf struct {
	Version          Version           `tls:"maxval:255"`
	LeafType         MerkleLeafType    `tls:"maxval:255"`
	TimestampedEntry *TimestampedEntry `tls:"selector:LeafType,val:0"`
}

// LogEntry holds the leaf that a log built for a submission, as rebuilt from
// a certificate chain.
type LogEntry struct {
	Leaf MerkleTreeLeaf
}

// AddChainResponse is the JSON response to the add-chain and add-pre-chain
// methods (sections 4.1 and 4.2).
type AddChainResponse struct {
	SCTVersion Version `json:"sct_version"`
	ID         []byte  `json:"id"`
	Timestamp  uint64  `json:"timestamp"`
	Extensions string  `json:"extensions"` // base64
	Signature  []byte  `json:"signature"`  // TLS-encoded DigitallySigned
}

// ToSignedCertificateTimestamp converts the JSON form of an SCT into the
// structure a log signed.
func (r *AddChainResponse) ToSignedCertificateTimestamp() (*SignedCertificateTimestamp, error) {
	sct := SignedCertificateTimestamp{
		SCTVersion: r.SCTVersion,
		Timestamp:  r.Timestamp,
	}
	if len(r.ID) != sha256.Size {
		return nil, encodingErrorf(nil, "id is invalid length, expected %d got %d", sha256.Size, len(r.ID))
	}
	copy(sct.LogID.KeyID[:], r.ID)

	exts, err := base64.StdEncoding.DecodeString(r.Extensions)
	if err != nil {
		return nil, encodingErrorf(err, "invalid base64 data in Extensions (%q)", r.Extensions)
	}
	sct.Extensions = CTExtensions(exts)

	ds, err := UnmarshalDigitallySigned(r.Signature)
	if err != nil {
		return nil, err
	}
	sct.Signature = *ds
	return &sct, nil
}

// GetSTHConsistencyResponse is the JSON response to the get-sth-consistency
// method (section 4.4).
type GetSTHConsistencyResponse struct {
	Consistency [][]byte `json:"consistency"`
}
