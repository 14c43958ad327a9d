package model

// Program センターが提供するプログラム1件
type Program struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	CenterID   string   `json:"center_id"`
	CenterName string   `json:"center_name"`
	Tags       []string `json:"tags"`
}

// SignupRequest プログラム申込フォームの入力
type SignupRequest struct {
	ApplicantName string `json:"applicant_name" form:"applicant_name" binding:"required"`
	Phone         string `json:"phone" form:"phone"`
	CenterName    string `json:"center_name" form:"center_name" binding:"required"`
	ProgramName   string `json:"program_name" form:"program_name" binding:"required"`
	Message       string `json:"message" form:"message"`
}

// SignupReceipt 申込の受付表示（保存はしない）
type SignupReceipt struct {
	ReceiptID     string `json:"receipt_id"`
	ApplicantName string `json:"applicant_name"`
	CenterName    string `json:"center_name"`
	ProgramName   string `json:"program_name"`
	Message       string `json:"message"`
	Persisted     bool   `json:"persisted"`
}
