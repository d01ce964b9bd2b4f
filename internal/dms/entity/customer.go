package entity

// Customer 客户实体
type Customer struct {
	Base
	CustomerName   string `json:"customer_name" gorm:"size:200;not null"`
	MobileNumber   string `json:"mobile_number" gorm:"size:20"`
	Email          string `json:"email" gorm:"size:100"`
	BillingAddress string `json:"billing_address" gorm:"size:500"`
	City           string `json:"city" gorm:"size:100"`
	State          string `json:"state" gorm:"size:100"`
	District       string `json:"district" gorm:"size:100"`
	Pincode        string `json:"pincode" gorm:"size:10"`
	PanNumber      string `json:"pan_number" gorm:"size:20"`
	GstNumber      string `json:"gst_number" gorm:"size:20"`
	Occupation     string `json:"occupation" gorm:"size:100"`
	Profession     string `json:"profession" gorm:"size:100"`
}

func (Customer) TableName() string {
	return "dms_customers"
}

func (c *Customer) StatusValue() string { return "" }
