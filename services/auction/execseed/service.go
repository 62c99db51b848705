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

// Package execseed provides round seed material from the execution chain.
// The seed is a tie-break and anti-predictability value, not a security
// primitive; the latest block hash is unpredictable enough for that purpose.
package execseed

import (
	"context"

	execclient "github.com/attestantio/go-execution-client"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"golang.org/x/crypto/sha3"
)

// Service provides round seeds derived from the latest execution block hash.
type Service struct {
	blocksProvider execclient.BlocksProvider
}

// module-wide log.
var log zerolog.Logger

// New creates a new execution chain seed provider.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "auction").Str("impl", "execseed").Logger().Level(parameters.logLevel)

	return &Service{
		blocksProvider: parameters.blocksProvider,
	}, nil
}

// Seed provides seed material derived from the latest execution block hash.
func (s *Service) Seed(ctx context.Context) ([32]byte, error) {
	var seed [32]byte

	block, err := s.blocksProvider.Block(ctx, "latest")
	if err != nil {
		return seed, errors.Wrap(err, "failed to obtain latest block")
	}
	if block == nil {
		return seed, errors.New("no latest block")
	}

	hash := block.Hash()
	seed = sha3.Sum256(hash[:])
	log.Trace().Hex("block_hash", hash[:]).Msg("Derived round seed")

	return seed, nil
}
