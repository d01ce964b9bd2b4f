package entity

// ShippingStatus 交付状态
const (
	ShippingStatusPending   = "pending"
	ShippingStatusScheduled = "scheduled"
	ShippingStatusDelivered = "delivered"
)

// Shipping 车辆交付安排
type Shipping struct {
	Base
	OrderID             string `json:"order_id" gorm:"size:32;index"`
	CustomerName        string `json:"customer_name" gorm:"size:200"`
	ModelName           string `json:"model_name" gorm:"size:200"` // 冗余
	ShippingAddress     string `json:"shipping_address" gorm:"size:500"`
	City                string `json:"city" gorm:"size:100"`
	State               string `json:"state" gorm:"size:100"`
	District            string `json:"district" gorm:"size:100"`
	Pincode             string `json:"pincode" gorm:"size:10"`
	ContactPerson       string `json:"contact_person" gorm:"size:100"`
	ContactNumber       string `json:"contact_number" gorm:"size:20"`
	DeliveryDate        string `json:"delivery_date" gorm:"size:10"`
	DeliveryTimeSlot    string `json:"delivery_time_slot" gorm:"size:50"`
	SpecialInstructions string `json:"special_instructions" gorm:"size:500"`
	IsSameAsBilling     bool   `json:"is_same_as_billing"`
	Status              string `json:"status" gorm:"size:20;not null;default:scheduled"`
}

func (Shipping) TableName() string {
	return "dms_shipping"
}

func (s *Shipping) StatusValue() string { return s.Status }

// TimeSlots 可选交付时间段
var TimeSlots = []string{
	"9:00 AM - 11:00 AM",
	"11:00 AM - 1:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
	"5:00 PM - 7:00 PM",
}
