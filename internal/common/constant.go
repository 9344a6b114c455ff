// Package common contains shared constants and sentinel errors used across
// ChallengePool components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on authenticated requests.
const AccessTokenHeaderName = "access_token"
