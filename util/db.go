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

package util

import (
	"context"

	postgresqlshielddb "github.com/Najnomics/MEVShieldPool-sub001/services/shielddb/postgresql"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	majordomo "github.com/wealdtech/go-majordomo"
)

// InitShieldDB initialises the shield pool database.
// The database password may be supplied directly or as a majordomo URL.
func InitShieldDB(ctx context.Context, majordomoSvc majordomo.Service) (*postgresqlshielddb.Service, error) {
	password := viper.GetString("shielddb.password")
	if viper.GetString("shielddb.password-url") != "" {
		data, err := majordomoSvc.Fetch(ctx, viper.GetString("shielddb.password-url"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch database password")
		}
		password = string(data)
	}

	return postgresqlshielddb.New(ctx,
		postgresqlshielddb.WithLogLevel(LogLevel("shielddb")),
		postgresqlshielddb.WithServer(viper.GetString("shielddb.server")),
		postgresqlshielddb.WithUser(viper.GetString("shielddb.user")),
		postgresqlshielddb.WithPassword(password),
		postgresqlshielddb.WithPort(viper.GetInt32("shielddb.port")),
	)
}
