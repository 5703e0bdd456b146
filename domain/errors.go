// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

var (
	ErrAuthentication    = errors.New("authentication failed")
	ErrSourceUnavailable = errors.New("label unavailable")
	ErrProtocol          = errors.New("unexpected server response")
	ErrPermissionDenied  = errors.New("label is selected read-only")
	ErrDeletionFailure   = errors.New("deletion failed")

	ErrIndexIncomplete     = errors.New("index is incomplete")
	ErrLabelAlreadyScanned = errors.New("label was already scanned in this run")
	ErrUidValidityChanged  = errors.New("uid validity changed since scan")
)
