// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when the server aggregate is built
	// without a single configured transport.
	errNoServersAreCreated = errors.New("no servers are created")
)
