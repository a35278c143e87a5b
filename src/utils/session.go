package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ชื่อ cookie ของ session เช็คอิน
//   - CookieAppStatus อ่านได้จาก client script (ใช้ branch UI) - ห้ามใส่ของลับ
//   - CookieSession เป็น JWT แบบ HttpOnly เก็บ memberId/groupId ที่รอดำเนินการ
const (
	CookieAppStatus = "app_status"
	CookieSession   = "checkin_session"
)

const sessionTTL = 2 * time.Hour

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // fallback for development
	}
	return []byte(secret)
}

// SessionClaims ข้อมูลลับฝั่ง server ที่ผูกกับ session เช็คอิน
// MemberID ว่างได้สำหรับ path ไม่มีอีเมล
type SessionClaims struct {
	MemberID string `json:"memberId,omitempty"`
	GroupID  string `json:"groupId"`
	jwt.RegisteredClaims
}

// GenerateSessionToken สร้าง JWT สำหรับ cookie checkin_session
func GenerateSessionToken(memberID, groupID string) (string, error) {
	claims := SessionClaims{
		MemberID: memberID,
		GroupID:  groupID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ParseSessionToken ตรวจลายเซ็นและวันหมดอายุ แล้วคืน claims
func ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
