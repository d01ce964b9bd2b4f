package entity

// EnquiryStatus 询价状态
const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusConverted = "converted"
)

// Enquiry 客户询价
type Enquiry struct {
	Base
	CustomerID          string `json:"customer_id" gorm:"size:32;index"`
	CustomerName        string `json:"customer_name" gorm:"size:200"` // 冗余
	ModelID             string `json:"model_id" gorm:"size:32;index"`
	ModelName           string `json:"model_name" gorm:"size:200"` // 冗余
	Variant             string `json:"variant" gorm:"size:50"`
	ColorID             string `json:"color_id" gorm:"size:32"`
	ColorName           string `json:"color_name" gorm:"size:100"`            // 冗余
	ApproxAvailableDate string `json:"approx_available_date" gorm:"size:10"` // 冗余，取自颜色
	AdditionalNotes     string `json:"additional_notes" gorm:"type:text"`
	Status              string `json:"status" gorm:"size:20;not null;default:pending"`
}

func (Enquiry) TableName() string {
	return "dms_enquiries"
}

func (e *Enquiry) StatusValue() string { return e.Status }
