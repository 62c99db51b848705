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

package local

import (
	"errors"

	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel zerolog.Level
	secret   []byte
	balances bidcrypt.BalanceProvider
}

// Parameter is the interface for service parameters.
type Parameter interface {
	apply(p *parameters)
}

type parameterFunc func(*parameters)

func (f parameterFunc) apply(p *parameters) {
	f(p)
}

// WithLogLevel sets the log level for the module.
func WithLogLevel(logLevel zerolog.Level) Parameter {
	return parameterFunc(func(p *parameters) {
		p.logLevel = logLevel
	})
}

// WithSecret sets the masking secret for the module.
func WithSecret(secret []byte) Parameter {
	return parameterFunc(func(p *parameters) {
		p.secret = secret
	})
}

// WithBalanceProvider sets the balance provider used to evaluate access conditions.
func WithBalanceProvider(provider bidcrypt.BalanceProvider) Parameter {
	return parameterFunc(func(p *parameters) {
		p.balances = provider
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if len(parameters.secret) == 0 {
		return nil, errors.New("no secret specified")
	}

	return &parameters, nil
}
