// Package tokens signs and verifies purchase tokens. A purchase token is an
// HS256 JWT naming the purchase, its account and its product.
package tokens

import (
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the purchase identity alongside the standard claims.
type Claims struct {
	jwt.RegisteredClaims
	PurchaseID string
	AccountID  string
	ProductID  string
}

// GenerateToken signs a purchase token. Tokens carry no expiry: a purchased
// token stays valid for as long as the purchase exists.
func GenerateToken(purchaseID, accountID, productID string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: purchaseID,
		},
		PurchaseID: purchaseID,
		AccountID:  accountID,
		ProductID:  productID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.PurchaseID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
