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

// Package bidcrypt defines the boundary to the external network that keeps
// bid amounts sealed until settlement.  The auction core does not implement
// cryptography itself; a decrypted amount is treated identically to a
// plaintext bid.
package bidcrypt

import (
	"context"
	"math/big"
)

// Oracle seals and unseals bid amounts.
type Oracle interface {
	// Encrypt seals an amount for the given pool under the given access conditions.
	Encrypt(ctx context.Context, poolKey []byte, amount *big.Int, conditions []Condition) ([]byte, error)

	// Decrypt unseals a previously sealed amount.  The proof identifies the
	// party requesting decryption and is checked against the access conditions.
	Decrypt(ctx context.Context, blob []byte, proof []byte) (*big.Int, error)
}
