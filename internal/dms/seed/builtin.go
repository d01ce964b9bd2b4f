package seed

import (
	"context"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/shopspring/decimal"
)

type builtinSource struct{}

// Builtin 返回内置演示数据
func Builtin() Source {
	return builtinSource{}
}

func (builtinSource) Load(context.Context) (*Dataset, error) {
	return BuiltinDataset(), nil
}

func base(id, createdAt string) entity.Base {
	return entity.Base{ID: id, CreatedAt: createdAt}
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// BuiltinDataset 每次调用返回一份新的演示数据
func BuiltinDataset() *Dataset {
	return &Dataset{
		Customers: []*entity.Customer{
			{
				Base: base("CUST-001", "2024-01-15"), CustomerName: "John Doe", MobileNumber: "9876543210",
				Email: "john.doe@email.com", BillingAddress: "123 Main Street, Mumbai", City: "Mumbai",
				State: "Maharashtra", District: "Mumbai", Pincode: "400001",
				Occupation: "Engineer", Profession: "Software",
			},
			{
				Base: base("CUST-002", "2024-01-14"), CustomerName: "Jane Smith", MobileNumber: "9876543211",
				Email: "jane.smith@email.com", BillingAddress: "456 Park Avenue, Delhi", City: "Delhi",
				State: "Delhi", District: "New Delhi", Pincode: "110001",
				Occupation: "Doctor", Profession: "Medical",
			},
			{
				Base: base("CUST-003", "2024-01-13"), CustomerName: "Mike Johnson", MobileNumber: "9876543212",
				Email: "mike.johnson@email.com", BillingAddress: "78 Lake Road, Pune", City: "Pune",
				State: "Maharashtra", District: "Pune", Pincode: "411001",
				Occupation: "Architect", Profession: "Design",
			},
		},
		Models: []*entity.VehicleModel{
			{
				Base: base("MODEL-001", "2024-01-15"), ModelName: "Maruti Suzuki Fronx", Variant: "VXI",
				FuelType: entity.FuelPetrol, Mileage: 17.8, Transmission: entity.TransmissionManual,
				EngineCapacity: "1.5L", PowerOutput: "121 PS", Torque: "145 Nm",
				SeatingCapacity: 5, BootSpace: 506, GroundClearance: 165,
				Features: "Sunroof, Touchscreen, Cruise Control",
			},
			{
				Base: base("MODEL-002", "2024-01-14"), ModelName: "Maruti Suzuki Baleno", Variant: "Hybrid",
				FuelType: entity.FuelHybrid, Mileage: 23.27, Transmission: entity.TransmissionCVT,
				EngineCapacity: "2.5L", PowerOutput: "215 PS", Torque: "221 Nm",
				SeatingCapacity: 5, BootSpace: 524, GroundClearance: 160,
				Features: "Hybrid System, Premium Audio, Safety Suite",
			},
			{
				Base: base("MODEL-003", "2024-01-13"), ModelName: "Maruti Swift", Variant: "ZXI",
				FuelType: entity.FuelPetrol, Mileage: 23.2, Transmission: entity.TransmissionManual,
				EngineCapacity: "1.2L", PowerOutput: "90 PS", Torque: "113 Nm",
				SeatingCapacity: 5, BootSpace: 268, GroundClearance: 170,
				Features: "Smartplay Studio, Apple CarPlay, Android Auto",
			},
		},
		Colors: []*entity.Color{
			{
				Base: base("COLOR-001", "2024-01-15"), ColorName: "Pearl White", ModelID: "MODEL-001",
				ModelName: "Maruti Suzuki Fronx", ColorCode: "#FFFFFF", ApproxAvailableDate: "2024-02-15",
				IsAvailable: true, AdditionalCost: amount(0), Description: "Premium pearl white finish",
			},
			{
				Base: base("COLOR-002", "2024-01-14"), ColorName: "Metallic Silver", ModelID: "MODEL-001",
				ModelName: "Maruti Suzuki Fronx", ColorCode: "#C0C0C0", ApproxAvailableDate: "2024-02-20",
				IsAvailable: true, AdditionalCost: amount(15000), Description: "Metallic silver with premium finish",
			},
			{
				Base: base("COLOR-003", "2024-01-13"), ColorName: "Midnight Black", ModelID: "MODEL-002",
				ModelName: "Maruti Suzuki Baleno", ColorCode: "#000000", ApproxAvailableDate: "2024-02-25",
				IsAvailable: true, AdditionalCost: amount(0), Description: "Deep black metallic finish",
			},
			{
				Base: base("COLOR-004", "2024-01-12"), ColorName: "Racing Red", ModelID: "MODEL-003",
				ModelName: "Maruti Swift", ColorCode: "#FF0000", ApproxAvailableDate: "2024-03-01",
				IsAvailable: false, AdditionalCost: amount(25000), Description: "Sporty red metallic finish",
			},
		},
		Enquiries: []*entity.Enquiry{
			{
				Base: base("ENQ-001", "2024-01-15"), CustomerID: "CUST-001", CustomerName: "John Doe",
				ModelID: "MODEL-001", ModelName: "Maruti Suzuki Fronx", Variant: "VXI",
				ColorID: "COLOR-001", ColorName: "Pearl White", ApproxAvailableDate: "2024-02-15",
				Status: entity.EnquiryStatusPending,
			},
			{
				Base: base("ENQ-002", "2024-01-14"), CustomerID: "CUST-002", CustomerName: "Jane Smith",
				ModelID: "MODEL-002", ModelName: "Maruti Suzuki Baleno", Variant: "Hybrid",
				ColorID: "COLOR-003", ColorName: "Midnight Black", ApproxAvailableDate: "2024-02-25",
				Status: entity.EnquiryStatusConverted,
			},
		},
		Orders: []*entity.Order{
			{
				Base: base("ORD-20240115-001", "2024-01-15"), CustomerID: "CUST-001", CustomerName: "John Doe",
				EnquiryID: "ENQ-001", ModelName: "Maruti Suzuki Fronx",
				OrderType: entity.OrderTypeNew, PaymentType: entity.PaymentCash, DownPayment: amount(50000),
				PreferredDeliveryLocation: "Mumbai Showroom", SaleType: entity.SaleIndividual,
				TentativeDeliveryDate: "2024-02-15", ExpectedDeliveryDate: "2024-02-20",
				Status: entity.OrderStatusPending,
			},
			{
				Base: base("ORD-20240114-002", "2024-01-14"), CustomerID: "CUST-002", CustomerName: "Jane Smith",
				EnquiryID: "ENQ-002", ModelName: "Maruti Suzuki Baleno",
				OrderType: entity.OrderTypeExchange, PaymentType: entity.PaymentLoan,
				FinancierName: "HDFC Bank", FinanceAmount: amount(800000), EMIAmount: amount(25000),
				TenureMonths: 36, DownPayment: amount(100000),
				PreferredDeliveryLocation: "Delhi Showroom", SaleType: entity.SaleIndividual,
				TentativeDeliveryDate: "2024-02-25", ExpectedDeliveryDate: "2024-03-01",
				Status: entity.OrderStatusConfirmed,
			},
		},
		Prices: []*entity.Price{
			{
				Base: base("PRICE-001", "2024-01-15"), OrderID: "ORD-20240115-001",
				CustomerName: "John Doe", ModelName: "Maruti Suzuki Fronx",
				BookingAmount: amount(25000), SellingPrice: amount(1200000), DiscountAmount: amount(50000),
				ReceivedAmount: amount(50000), AdditionalCharges: amount(15000), GSTAmount: amount(180000),
				InsuranceAmount: amount(45000), RegistrationAmount: amount(25000),
			},
			{
				Base: base("PRICE-002", "2024-01-14"), OrderID: "ORD-20240114-002",
				CustomerName: "Jane Smith", ModelName: "Maruti Suzuki Baleno",
				BookingAmount: amount(50000), SellingPrice: amount(2500000), DiscountAmount: amount(100000),
				ReceivedAmount: amount(100000), AdditionalCharges: amount(30000), GSTAmount: amount(375000),
				InsuranceAmount: amount(75000), RegistrationAmount: amount(50000),
			},
		},
		Shipping: []*entity.Shipping{
			{
				Base: base("SHIP-001", "2024-01-15"), OrderID: "ORD-20240115-001",
				CustomerName: "John Doe", ModelName: "Maruti Suzuki Fronx",
				ShippingAddress: "123 Main Street, Mumbai", City: "Mumbai", State: "Maharashtra",
				District: "Mumbai", Pincode: "400001", ContactPerson: "John Doe", ContactNumber: "9876543210",
				DeliveryDate: "2024-02-20", DeliveryTimeSlot: "9:00 AM - 11:00 AM",
				SpecialInstructions: "Call before delivery", Status: entity.ShippingStatusScheduled,
			},
			{
				Base: base("SHIP-002", "2024-01-14"), OrderID: "ORD-20240114-002",
				CustomerName: "Jane Smith", ModelName: "Maruti Suzuki Baleno",
				ShippingAddress: "456 Park Avenue, Delhi", City: "Delhi", State: "Delhi",
				District: "New Delhi", Pincode: "110001", ContactPerson: "Jane Smith", ContactNumber: "9876543211",
				DeliveryDate: "2024-02-25", DeliveryTimeSlot: "1:00 PM - 3:00 PM",
				SpecialInstructions: "Gate code: 1234", Status: entity.ShippingStatusDelivered,
			},
		},
	}
}
