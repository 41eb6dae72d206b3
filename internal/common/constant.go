// Package common contains shared constants and sentinel errors used across
// staffdesk components.
package common

// APIKeyHeaderName is the gRPC metadata key used to carry the console
// API key on outbound store requests.
const APIKeyHeaderName = "api_key"

// DefaultRoleName is the role assigned by the admin tool when none is given.
const DefaultRoleName = "staff"
