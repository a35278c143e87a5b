package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG สร้าง QR Code เป็น PNG bytes สำหรับตอบกลับ client ตรง ๆ
// ใช้ทำโปสเตอร์เช็คอินประจำกลุ่ม
func GeneratePNG(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
