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

package standard

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel      zerolog.Level
	genesisTime   time.Time
	roundDuration time.Duration
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

// WithGenesisTime sets the genesis time for the module.
func WithGenesisTime(genesisTime time.Time) Parameter {
	return parameterFunc(func(p *parameters) {
		p.genesisTime = genesisTime
	})
}

// WithRoundDuration sets the auction round duration for the module.
func WithRoundDuration(roundDuration time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.roundDuration = roundDuration
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

	if parameters.genesisTime.IsZero() {
		return nil, errors.New("no genesis time specified")
	}
	if parameters.roundDuration == 0 {
		return nil, errors.New("no round duration specified")
	}

	return &parameters, nil
}
