package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	cipher_number = 12
	Expire_hours  = 72
	default_role  = "user"
)

func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cipher_number)
	return string(hash), err
}

func CheckPassword(hash, pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}

func GenerateJWT(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     default_role,
		"exp":      time.Now().Add(time.Duration(Expire_hours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
		"nbf":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	// TODO: move the signing secret into config for production deployments.
	signedToken, err := token.SignedString([]byte("secret"))
	return "Bearer " + signedToken, err
}

// ParseJWT validates tk (with or without the "Bearer " prefix) and returns
// the username and role claims.
func ParseJWT(tk string) (string, string, error) {
	tk = strings.TrimSpace(tk)
	low := strings.ToLower(tk)
	if strings.HasPrefix(low, "bearer ") {
		tk = strings.TrimSpace(tk[7:])
	}
	if tk == "" {
		return "", default_role, errors.New("empty token")
	}
	token, err := jwt.Parse(tk, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte("secret"), nil
	})
	if err != nil {
		return "", default_role, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		username, ok1 := claims["username"].(string)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 {
			return "", default_role, errors.New("user's claim is not a string")
		}
		return username, role, nil
	}
	return "", default_role, errors.New("invalid token")
}
