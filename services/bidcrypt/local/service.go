// Copyright © 2025 MEVShield Pool contributors.
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

// Package local is a bid sealing oracle local to the daemon.  It provides the
// Oracle contract for testing and single-operator deployments; it is not a
// threshold network and offers no protection against the operator itself.
package local

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"math/big"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"golang.org/x/crypto/sha3"
)

// Service is a local bid sealing oracle.
type Service struct {
	secret   []byte
	balances bidcrypt.BalanceProvider
}

// module-wide log.
var log zerolog.Logger

type payload struct {
	Amount     *big.Int             `json:"amount"`
	Conditions []bidcrypt.Condition `json:"conditions,omitempty"`
}

// New creates a new local bid sealing oracle.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "bidcrypt").Str("impl", "local").Logger().Level(parameters.logLevel)

	return &Service{
		secret:   parameters.secret,
		balances: parameters.balances,
	}, nil
}

// Encrypt seals an amount for the given pool under the given access conditions.
func (s *Service) Encrypt(_ context.Context,
	poolKey []byte,
	amount *big.Int,
	conditions []bidcrypt.Condition,
) ([]byte, error) {
	if len(poolKey) == 0 {
		return nil, errors.New("no pool key specified")
	}
	if amount == nil || amount.Sign() < 0 {
		return nil, errors.New("invalid amount")
	}

	plaintext, err := json.Marshal(&payload{Amount: amount, Conditions: conditions})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payload")
	}

	// Blob layout: uint16 pool key length, pool key, masked payload.
	blob := make([]byte, 2+len(poolKey)+len(plaintext))
	binary.BigEndian.PutUint16(blob[0:2], uint16(len(poolKey)))
	copy(blob[2:], poolKey)
	copy(blob[2+len(poolKey):], plaintext)
	s.mask(poolKey, blob[2+len(poolKey):])

	return blob, nil
}

// Decrypt unseals a previously sealed amount, checking its access conditions
// against the account named by the proof.
func (s *Service) Decrypt(ctx context.Context, blob []byte, proof []byte) (*big.Int, error) {
	if len(blob) < 2 {
		return nil, errors.New("blob too short")
	}
	keyLen := int(binary.BigEndian.Uint16(blob[0:2]))
	if len(blob) < 2+keyLen {
		return nil, errors.New("blob truncated")
	}
	poolKey := blob[2 : 2+keyLen]

	plaintext := make([]byte, len(blob)-2-keyLen)
	copy(plaintext, blob[2+keyLen:])
	s.mask(poolKey, plaintext)

	var p payload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal payload")
	}
	if p.Amount == nil {
		return nil, errors.New("payload missing amount")
	}

	if err := bidcrypt.Evaluate(ctx, p.Conditions, string(proof), s.balances, time.Now()); err != nil {
		return nil, err
	}

	return p.Amount, nil
}

// mask XORs data with a keystream derived from the oracle secret and the pool key.
func (s *Service) mask(poolKey []byte, data []byte) {
	shake := sha3.NewShake256()
	_, _ = shake.Write(s.secret)
	_, _ = shake.Write(poolKey)
	keystream := make([]byte, len(data))
	_, _ = shake.Read(keystream)
	for i := range data {
		data[i] ^= keystream[i]
	}
}
