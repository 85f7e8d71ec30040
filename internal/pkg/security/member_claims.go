package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Hirebase"
	JWTExpirationTime        = time.Hour * 24
)

// MemberClaims Token 中携带的业务信息
type MemberClaims struct {
	MemberID   string `json:"memberId"`
	MemberType string `json:"memberType"`
	jwt.RegisteredClaims
}
