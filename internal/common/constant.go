// Package common contains constants, sentinel errors and helpers shared by the
// client and the sandbox billing server.
package common

// AccountIDHeaderName is the gRPC metadata key carrying the caller's account id.
const AccountIDHeaderName = "account-id"
