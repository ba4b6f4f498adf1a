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

package ct

import (
	"github.com/google/certificate-transparency-go/asn1"
	"github.com/google/certificate-transparency-go/tls"
	"github.com/google/certificate-transparency-go/x509"
)

// UnmarshalDigitallySigned decodes a TLS-encoded DigitallySigned, which must
// fill b exactly.
func UnmarshalDigitallySigned(b []byte) (*DigitallySigned, error) {
	var ds DigitallySigned
	rest, err := tls.Unmarshal(b, &ds)
	if err != nil {
		return nil, encodingErrorf(err, "failed to unmarshal DigitallySigned")
	}
	if len(rest) > 0 {
		return nil, encodingErrorf(nil, "trailing data (%d bytes) after DigitallySigned", len(rest))
	}
	return &ds, nil
}

// UnmarshalSCT decodes a TLS-encoded SignedCertificateTimestamp, which must
// fill b exactly.
func UnmarshalSCT(b []byte) (*SignedCertificateTimestamp, error) {
	var sct SignedCertificateTimestamp
	rest, err := tls.Unmarshal(b, &sct)
	if err != nil {
		return nil, encodingErrorf(err, "failed to unmarshal SCT")
	}
	if len(rest) > 0 {
		return nil, encodingErrorf(nil, "trailing data (%d bytes) after SCT", len(rest))
	}
	return &sct, nil
}

// ParseSCTList decodes the value of the embedded SCT list certificate
// extension: a DER OCTET STRING wrapping a TLS SignedCertificateTimestampList.
// The SCTs are returned in list order.
func ParseSCTList(extValue []byte) ([]SignedCertificateTimestamp, error) {
	var raw []byte
	rest, err := asn1.Unmarshal(extValue, &raw)
	if err != nil {
		return nil, encodingErrorf(err, "failed to unwrap SCT list OCTET STRING")
	}
	if len(rest) > 0 {
		return nil, encodingErrorf(nil, "trailing data (%d bytes) after SCT list OCTET STRING", len(rest))
	}
	var list x509.SignedCertificateTimestampList
	rest, err = tls.Unmarshal(raw, &list)
	if err != nil {
		return nil, encodingErrorf(err, "failed to unmarshal SCT list")
	}
	if len(rest) > 0 {
		return nil, encodingErrorf(nil, "trailing data (%d bytes) after SCT list", len(rest))
	}
	scts := make([]SignedCertificateTimestamp, 0, len(list.SCTList))
	for i, serialized := range list.SCTList {
		sct, err := UnmarshalSCT(serialized.Val)
		if err != nil {
			return nil, encodingErrorf(err, "SCT %d in list", i)
		}
		scts = append(scts, *sct)
	}
	return scts, nil
}

// SerializeSCTSignatureInput serializes the passed in sct and log entry into
// the byte sequence the log signed.
func SerializeSCTSignatureInput(sct SignedCertificateTimestamp, entry LogEntry) ([]byte, error) {
	if sct.SCTVersion != V1 {
		return nil, encodingErrorf(nil, "unsupported SCT version %v", sct.SCTVersion)
	}
	if entry.Leaf.TimestampedEntry == nil {
		return nil, encodingErrorf(nil, "log entry has no TimestampedEntry")
	}
	input := CertificateTimestamp{
		SCTVersion:    sct.SCTVersion,
		SignatureType: CertificateTimestampSignatureType,
		Timestamp:     sct.Timestamp,
		EntryType:     entry.Leaf.TimestampedEntry.EntryType,
		Extensions:    sct.Extensions,
	}
	switch entry.Leaf.TimestampedEntry.EntryType {
	case X509LogEntryType:
		input.X509Entry = entry.Leaf.TimestampedEntry.X509Entry
	case PrecertLogEntryType:
		input.PrecertEntry = entry.Leaf.TimestampedEntry.PrecertEntry
	default:
		return nil, encodingErrorf(nil, "unsupported entry type %s", entry.Leaf.TimestampedEntry.EntryType)
	}
	data, err := tls.Marshal(input)
	if err != nil {
		return nil, encodingErrorf(err, "failed to marshal CertificateTimestamp")
	}
	return data, nil
}

// SerializeSTHSignatureInput serializes the passed in STH into the byte
// sequence the log signed.
func SerializeSTHSignatureInput(sth SignedTreeHead) ([]byte, error) {
	if sth.Version != V1 {
		return nil, encodingErrorf(nil, "unsupported STH version %v", sth.Version)
	}
	input := TreeHeadSignature{
		Version:        sth.Version,
		SignatureType:  TreeHashSignatureType,
		Timestamp:      sth.Timestamp,
		TreeSize:       sth.TreeSize,
		SHA256RootHash: sth.SHA256RootHash,
	}
	data, err := tls.Marshal(input)
	if err != nil {
		return nil, encodingErrorf(err, "failed to marshal TreeHeadSignature")
	}
	return data, nil
}

// CreateX509MerkleTreeLeaf builds the leaf for a certificate logged at
// timestamp.
func CreateX509MerkleTreeLeaf(cert ASN1Cert, timestamp uint64) *MerkleTreeLeaf {
	return &MerkleTreeLeaf{
		Version:  V1,
		LeafType: TimestampedEntryLeafType,
		TimestampedEntry: &TimestampedEntry{
			Timestamp: timestamp,
			EntryType: X509LogEntryType,
			X509Entry: &cert,
		},
	}
}

// CreatePrecertMerkleTreeLeaf builds the leaf for a precertificate logged at
// timestamp. tbs must already be in the form the log signs, with the poison
// extension removed and the final issuer in place.
func CreatePrecertMerkleTreeLeaf(issuerKeyHash [32]byte, tbs []byte, timestamp uint64) *MerkleTreeLeaf {
	return &MerkleTreeLeaf{
		Version:  V1,
		LeafType: TimestampedEntryLeafType,
		TimestampedEntry: &TimestampedEntry{
			Timestamp: timestamp,
			EntryType: PrecertLogEntryType,
			PrecertEntry: &PreCert{
				IssuerKeyHash:  issuerKeyHash,
				TBSCertificate: tbs,
			},
		},
	}
}
