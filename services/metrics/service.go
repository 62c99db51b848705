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

// Package metrics tracks metrics for the daemon.
package metrics

// Service is the generic metrics service.
type Service interface {
	// Presenter provides the name of the presenter for this service.
	Presenter() string
}

// ReadyMonitor provides a monitor for daemon readiness.
type ReadyMonitor interface {
	// SetReady sets the readiness state of the daemon.
	SetReady(ready bool)
}

// ReleaseMonitor provides a monitor for the daemon release.
type ReleaseMonitor interface {
	// SetRelease sets the release of the daemon.
	SetRelease(release string)
}
