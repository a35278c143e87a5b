package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`         // HTTP Status Code
	Message string `json:"message"`        // รายละเอียดของ Error
	Code    string `json:"code,omitempty"` // รหัสแยกเหตุผล เช่น OUTSIDE_RADIUS / WRONG_DAY
}
