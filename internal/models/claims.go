package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the claims carried by a signed bearer token. The acct
// claim names the account the caller is authorized to act as.
type TokenClaims struct {
	jwt.RegisteredClaims
	AccountNum string `json:"acct"`
}
