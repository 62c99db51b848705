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

package postgresql

import (
	"errors"

	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel zerolog.Level
	server   string
	port     int32
	user     string
	password string
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

// WithServer sets the server for this module.
func WithServer(server string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.server = server
	})
}

// WithPort sets the port for this module.
func WithPort(port int32) Parameter {
	return parameterFunc(func(p *parameters) {
		p.port = port
	})
}

// WithUser sets the user for this module.
func WithUser(user string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.user = user
	})
}

// WithPassword sets the password for this module.
func WithPassword(password string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.password = password
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
		port:     5432,
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if parameters.server == "" {
		return nil, errors.New("no server specified")
	}
	if parameters.port == 0 {
		return nil, errors.New("no port specified")
	}
	if parameters.user == "" {
		return nil, errors.New("no user specified")
	}

	return &parameters, nil
}
