package services

import (
	"time"

	"hotel-booking/config"
	"hotel-booking/errors"
	"hotel-booking/models"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// CreateToken phát hành JWT cho user vừa đăng nhập
func CreateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: user.ID,
			Role:   user.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET")))
}

// GetUserIDFromToken lấy userID và role từ token, có kiểm tra chữ ký
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return []byte(config.GetEnv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	if claims.UserInfo.UserId == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
