// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type StateError GenericError

// ledger operation errors
//
// each is a single instance so that callers can compare with ==
var (
	CannotRemoveOwner    = PermissionError("cannot remove owner from admins")
	InsufficientBalance  = FundsError("insufficient balance")
	InsufficientTreasury = FundsError("insufficient treasury balance")
	InvalidAddress       = InvalidError("invalid address")
	InvalidAmount        = InvalidError("invalid amount")
	InvalidConfig        = InvalidError("invalid ledger configuration")
	InvalidRange         = InvalidError("invalid transaction range")
	Paused               = StateError("ledger is paused")
	Unauthorized         = PermissionError("caller is not authorised")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = InvalidError("address checksum mismatch")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseVersionTooNew        = ProcessError("database version is newer than supported")
	DeploymentExists             = ExistsError("deployment file already exists")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidDecimals              = InvalidError("invalid decimals")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotADirectory                = InvalidError("not a directory")
	NotAvailable                 = ProcessError("not available in current mode")
	NotInitialised               = NotFoundError("not initialised")
	RateLimiting                 = InvalidError("rate limiting")
	SupplyMismatch               = ProcessError("balances and treasury do not sum to total supply")
	TruncatedRecord              = InvalidError("truncated record")
	UnknownTransactionType       = InvalidError("unknown transaction type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e FundsError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrFunds(e error) bool      { _, ok := e.(FundsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool      { _, ok := e.(StateError); return ok }

// names for the ledger error kinds
var kinds = map[error]string{
	CannotRemoveOwner:    "CannotRemoveOwner",
	InsufficientBalance:  "InsufficientBalance",
	InsufficientTreasury: "InsufficientTreasury",
	InvalidAddress:       "InvalidAddress",
	InvalidAmount:        "InvalidAmount",
	InvalidConfig:        "InvalidConfig",
	InvalidRange:         "InvalidRange",
	Paused:               "Paused",
	Unauthorized:         "Unauthorized",
}

// Kind - the name of a ledger error kind, or "" if the error is not
// one of the ledger rejections
func Kind(e error) string {
	for k, name := range kinds {
		if k == e {
			return name
		}
	}
	return ""
}

// Lookup - recover a ledger error instance from its message
//
// the JSON-RPC codec only carries the error text, this allows a
// client to get back the comparable instance
func Lookup(message string) (error, bool) {
	for e := range kinds {
		if e.Error() == message {
			return e, true
		}
	}
	return nil, false
}
