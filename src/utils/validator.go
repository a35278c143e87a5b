package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validate instance เดียวใช้ร่วมกันทุก controller (validator cache struct info ไว้ภายใน)
var Validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tag แล้วคืนข้อความ field แรกที่พัง
func ValidateStruct(s interface{}) error {
	return Validate.Struct(s)
}
