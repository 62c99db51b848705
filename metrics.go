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
	"context"

	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
)

var monitor metrics.Service

func registerMetrics(_ context.Context, m metrics.Service) error {
	monitor = m

	return nil
}

// setRelease is called when the release version is known.
func setRelease(_ context.Context, release string) {
	if releaseMonitor, isMonitor := monitor.(metrics.ReleaseMonitor); isMonitor {
		releaseMonitor.SetRelease(release)
	}
}

// setReady is called when the daemon's ready state changes.
func setReady(_ context.Context, ready bool) {
	if readyMonitor, isMonitor := monitor.(metrics.ReadyMonitor); isMonitor {
		readyMonitor.SetReady(ready)
	}
}
