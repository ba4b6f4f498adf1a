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
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// parseECDSASignature decodes the DER SEQUENCE { r INTEGER, s INTEGER }
// carried in an ECDSA DigitallySigned.
//
// Without strict, a SEQUENCE or INTEGER whose declared length runs past the
// end of the enclosing data is cut short at the end of that data, which is
// how the decoder behind the long-standing CT test vectors behaves. Bytes
// after the SEQUENCE, or after the second INTEGER within it, are rejected in
// both modes. With strict, the encoding must be canonical DER.
func parseECDSASignature(sig []byte, strict bool) (*big.Int, *big.Int, error) {
	if strict {
		return parseCanonicalECDSASignature(sig)
	}
	input := cryptobyte.String(sig)
	body, err := readTruncatingElement(&input, cbasn1.SEQUENCE)
	if err != nil {
		return nil, nil, fmt.Errorf("SEQUENCE: %v", err)
	}
	if !input.Empty() {
		return nil, nil, fmt.Errorf("%d trailing bytes after SEQUENCE", len(input))
	}
	r, err := readTruncatingInteger(&body)
	if err != nil {
		return nil, nil, fmt.Errorf("r: %v", err)
	}
	s, err := readTruncatingInteger(&body)
	if err != nil {
		return nil, nil, fmt.Errorf("s: %v", err)
	}
	if !body.Empty() {
		return nil, nil, fmt.Errorf("%d trailing bytes after INTEGERs", len(body))
	}
	return r, s, nil
}

func parseCanonicalECDSASignature(sig []byte) (*big.Int, *big.Int, error) {
	var (
		input = cryptobyte.String(sig)
		inner cryptobyte.String
		r     = new(big.Int)
		s     = new(big.Int)
	)
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, nil, errors.New("SEQUENCE is not canonical DER")
	}
	if !inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return nil, nil, errors.New("INTEGERs are not canonical DER")
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, nil, errors.New("non-positive INTEGER")
	}
	return r, s, nil
}

func readTruncatingInteger(s *cryptobyte.String) (*big.Int, error) {
	v, err := readTruncatingElement(s, cbasn1.INTEGER)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, errors.New("empty INTEGER")
	}
	if v[0]&0x80 != 0 {
		return nil, errors.New("negative INTEGER")
	}
	return new(big.Int).SetBytes(v), nil
}

// readTruncatingElement reads one element with the given tag and returns its
// contents, cut short if the declared length exceeds what is left in s.
func readTruncatingElement(s *cryptobyte.String, tag cbasn1.Tag) (cryptobyte.String, error) {
	var t uint8
	if !s.ReadUint8(&t) {
		return nil, errors.New("missing tag")
	}
	if cbasn1.Tag(t) != tag {
		return nil, fmt.Errorf("wanted tag %#02x, got %#02x", uint8(tag), t)
	}
	n, err := readLength(s)
	if err != nil {
		return nil, err
	}
	if n > uint64(len(*s)) {
		n = uint64(len(*s))
	}
	var v []byte
	s.ReadBytes(&v, int(n))
	return cryptobyte.String(v), nil
}

// readLength reads a short or long form definite length.
func readLength(s *cryptobyte.String) (uint64, error) {
	var b uint8
	if !s.ReadUint8(&b) {
		return 0, errors.New("missing length")
	}
	if b&0x80 == 0 {
		return uint64(b), nil
	}
	n := int(b & 0x7f)
	if n == 0 || n > 8 {
		return 0, fmt.Errorf("unsupported length of length %d", n)
	}
	var lenBytes []byte
	if !s.ReadBytes(&lenBytes, n) {
		return 0, errors.New("ran out of length bytes")
	}
	var l uint64
	for _, c := range lenBytes {
		l = l<<8 | uint64(c)
	}
	return l, nil
}
