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

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/Najnomics/MEVShieldPool-sub001/util"
)

// log is the daemon-wide logger.
var log zerolog.Logger

func initLogging() error {
	// We set the global logging level to trace, as if the global log level is
	// higher than the module-specific log level the latter is ignored.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if viper.GetString("log-file") != "" {
		f, err := os.OpenFile(util.ResolvePath(viper.GetString("log-file")), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		zerologger.Logger = zerologger.Logger.Output(f)
	} else if isatty.IsTerminal(os.Stdout.Fd()) {
		// Console output.
		zerologger.Logger = zerologger.Logger.Output(zerolog.SyncWriter(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	log = zerologger.Logger.Level(util.LogLevel(""))

	return nil
}
