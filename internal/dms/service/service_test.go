package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/seed"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
}

func newTestServices(t *testing.T, policy store.MissingPolicy) *Services {
	t.Helper()
	s := NewServices(Options{Policy: policy, Clock: fixedClock}, zap.NewNop())
	require.NoError(t, s.Seed(context.Background(), seed.Builtin()))
	return s
}

func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe), "expected field errors, got %v", err)
	return fe
}

func validCustomer() map[string]any {
	return map[string]any{
		"customer_name":   "Asha Rao",
		"mobile_number":   "9123456780",
		"email":           "asha@example.com",
		"billing_address": "12 Hill Road, Bengaluru",
		"city":            "Bengaluru",
		"state":           "Karnataka",
		"district":        "Bengaluru Urban",
		"pincode":         "560001",
		"occupation":      "Manager",
		"profession":      "Finance",
	}
}

func validOrder() map[string]any {
	return map[string]any{
		"customer_id":                 "CUST-003",
		"enquiry_id":                  "ENQ-001",
		"order_type":                  "NEW",
		"payment_type":                "CASH",
		"down_payment":                20000,
		"preferred_delivery_location": "Pune Showroom",
		"sale_type":                   "INDIVIDUAL",
		"tentative_delivery_date":     "2024-03-01",
		"expected_delivery_date":      "2024-03-05",
	}
}

func TestSeed_LoadsBuiltinDataset(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	assert.Equal(t, 3, s.Customers.Store().Len())
	assert.Equal(t, 2, s.Enquiries.Store().Len())
	assert.Equal(t, 2, s.Orders.Store().Len())
	assert.Equal(t, 3, s.Models.Store().Len())
	assert.Equal(t, 4, s.Colors.Store().Len())
	assert.Equal(t, 2, s.Prices.Store().Len())
	assert.Equal(t, 2, s.Shipping.Store().Len())

	p, err := s.Prices.Get("PRICE-001")
	require.NoError(t, err)
	assert.Equal(t, "1415000", p.TotalAmount.String())
	assert.Equal(t, "1340000", p.BalanceAmount.String())
}

func TestCustomer_CreateAssignsNextID(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	c, err := s.Customers.Create(validCustomer())
	require.NoError(t, err)
	assert.Equal(t, "CUST-004", c.ID)
	assert.Equal(t, "2024-01-20", c.CreatedAt)
	assert.Equal(t, "Asha Rao", c.CustomerName)
}

func TestCustomer_CreateReportsEveryFailingField(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Customers.Create(map[string]any{
		"customer_name": "A",
		"mobile_number": "12345",
		"email":         "not-an-email",
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, "Customer name must be at least 2 characters", fe["customer_name"])
	assert.Equal(t, "Mobile number must be at least 10 digits", fe["mobile_number"])
	assert.Equal(t, "Invalid email address", fe["email"])
	for _, field := range []string{"billing_address", "city", "state", "district", "pincode", "occupation", "profession"} {
		assert.Contains(t, fe, field)
	}
	assert.NotContains(t, fe, "pan_number")
	assert.Equal(t, 3, s.Customers.Store().Len())
}

func TestCustomer_EmptyEmailIsAllowed(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validCustomer()
	in["email"] = ""
	_, err := s.Customers.Create(in)
	assert.NoError(t, err)
}

func TestCustomer_IDsNotReusedAfterDelete(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	removed, err := s.Customers.Delete("CUST-003")
	require.NoError(t, err)
	require.True(t, removed)
	c, err := s.Customers.Create(validCustomer())
	require.NoError(t, err)
	assert.Equal(t, "CUST-004", c.ID)
}

func TestCustomer_ListSearchAndPaginate(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	res := s.Customers.List(store.ListParams{Keyword: "JOHN"})
	require.Len(t, res.Items, 2)
	assert.Equal(t, "John Doe", res.Items[0].CustomerName)
	assert.Equal(t, "Mike Johnson", res.Items[1].CustomerName)

	res = s.Customers.List(store.ListParams{Keyword: "john", Page: 2, Size: 1})
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "CUST-003", res.Items[0].ID)

	res = s.Customers.List(store.ListParams{})
	assert.Equal(t, 3, res.Total)
}

func TestEnquiry_ListByStatus(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	res := s.Enquiries.List(store.ListParams{Status: entity.EnquiryStatusPending})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "ENQ-001", res.Items[0].ID)
}

func TestCustomer_UpdateMergesPartialInput(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	c, err := s.Customers.Update("CUST-001", map[string]any{"city": "Thane"})
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", c.ID)
	assert.Equal(t, "2024-01-15", c.CreatedAt)
	assert.Equal(t, "Thane", c.City)
	assert.Equal(t, "John Doe", c.CustomerName)

	got, err := s.Customers.Get("CUST-001")
	require.NoError(t, err)
	assert.Equal(t, "Thane", got.City)
}

func TestCustomer_UpdateIgnoresIDAndCreatedAt(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	c, err := s.Customers.Update("CUST-002", map[string]any{"id": "CUST-999", "created_at": "1999-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "CUST-002", c.ID)
	assert.Equal(t, "2024-01-14", c.CreatedAt)
}

func TestCustomer_UpdateRevalidates(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Customers.Update("CUST-001", map[string]any{"customer_name": "J"})
	fe := fieldErrors(t, err)
	assert.Len(t, fe, 1)

	got, _ := s.Customers.Get("CUST-001")
	assert.Equal(t, "John Doe", got.CustomerName)
}

func TestMissingPolicy(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		s := newTestServices(t, store.MissingReport)
		_, err := s.Customers.Update("CUST-404", map[string]any{"city": "Goa"})
		assert.ErrorIs(t, err, store.ErrNotFound)
		removed, err := s.Customers.Delete("CUST-404")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.False(t, removed)
		_, err = s.ConfirmOrder("ORD-404")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("silent", func(t *testing.T) {
		s := newTestServices(t, store.MissingSilent)
		c, err := s.Customers.Update("CUST-404", map[string]any{"city": "Goa"})
		assert.NoError(t, err)
		assert.Nil(t, c)
		removed, err := s.Customers.Delete("CUST-404")
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 3, s.Customers.Store().Len())
		draft, err := s.ConvertEnquiry("ENQ-404")
		assert.NoError(t, err)
		assert.Nil(t, draft)
	})
}

func TestEnquiry_CreateSnapshotsReferences(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	e, err := s.Enquiries.Create(map[string]any{
		"customer_id": "CUST-003",
		"model_id":    "MODEL-001",
		"variant":     "VXI",
		"color_id":    "COLOR-002",
	})
	require.NoError(t, err)
	assert.Equal(t, "ENQ-003", e.ID)
	assert.Equal(t, "Mike Johnson", e.CustomerName)
	assert.Equal(t, "Maruti Suzuki Fronx", e.ModelName)
	assert.Equal(t, "Metallic Silver", e.ColorName)
	assert.Equal(t, "2024-02-20", e.ApproxAvailableDate)
	assert.Equal(t, entity.EnquiryStatusPending, e.Status)
}

func TestEnquiry_UnresolvedReferenceLeavesSnapshotEmpty(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	e, err := s.Enquiries.Create(map[string]any{
		"customer_id": "CUST-999",
		"model_id":    "MODEL-001",
		"variant":     "VXI",
		"color_id":    "COLOR-001",
	})
	require.NoError(t, err)
	assert.Equal(t, "", e.CustomerName)
	assert.Equal(t, "Maruti Suzuki Fronx", e.ModelName)
}

func TestEnquiry_UpdateKeepsStatus(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	e, err := s.Enquiries.Update("ENQ-002", map[string]any{"additional_notes": "Wants test drive", "status": "pending"})
	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusConverted, e.Status)
	assert.Equal(t, "Wants test drive", e.AdditionalNotes)
}

func TestEnquiry_SnapshotsAreNotRefreshed(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Customers.Update("CUST-001", map[string]any{"customer_name": "Johnny Doe"})
	require.NoError(t, err)

	e, err := s.Enquiries.Get("ENQ-001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", e.CustomerName)
}

func TestColor_OptionsNarrowByModel(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	opts := s.Colors.Options("MODEL-001")
	assert.Equal(t, []resolver.Option{
		{ID: "COLOR-001", Label: "Pearl White"},
		{ID: "COLOR-002", Label: "Metallic Silver"},
	}, opts)

	assert.Len(t, s.Colors.Options(""), 4)
	assert.Empty(t, s.Colors.Options("MODEL-404"))
}

func TestOptionLabels(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	assert.Equal(t, "John Doe - 9876543210", s.Customers.Options("")[0].Label)
	assert.Equal(t, "ENQ-001 - John Doe (Maruti Suzuki Fronx)", s.Enquiries.Options("")[0].Label)
	assert.Equal(t, "Maruti Suzuki Fronx VXI", s.Models.Options("")[0].Label)
	assert.Equal(t, "ORD-20240115-001 - John Doe", s.Orders.Options("")[0].Label)
}

func TestColor_Defaults(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := map[string]any{
		"color_name":            "Ocean Blue",
		"model_id":              "MODEL-003",
		"color_code":            "#0000FF",
		"approx_available_date": "2024-04-01",
	}
	c, err := s.Colors.Create(in)
	require.NoError(t, err)
	assert.True(t, c.IsAvailable)
	assert.True(t, c.AdditionalCost.IsZero())
	assert.Equal(t, "Maruti Swift", c.ModelName)
	assert.Equal(t, "COLOR-005", c.ID)

	in["is_available"] = false
	c, err = s.Colors.Create(in)
	require.NoError(t, err)
	assert.False(t, c.IsAvailable)
}

func TestColor_NegativeCostRejected(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Colors.Create(map[string]any{
		"color_name":            "Ocean Blue",
		"model_id":              "MODEL-003",
		"color_code":            "#0000FF",
		"approx_available_date": "2024-04-01",
		"additional_cost":       -1,
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, "Additional cost must be a positive number", fe["additional_cost"])
}

func TestOrder_LoanRequiresFinanceDetails(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["payment_type"] = "LOAN"
	_, err := s.Orders.Create(in)
	fe := fieldErrors(t, err)
	for _, field := range []string{"financier_name", "finance_amount", "emi_amount", "tenure_months"} {
		assert.Equal(t, loanRequiredMessage, fe[field], field)
	}
	assert.Len(t, fe, 4)
}

func TestOrder_LoanRuleRunsWithFieldErrors(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["payment_type"] = "LOAN"
	in["sale_type"] = "RETAIL"
	_, err := s.Orders.Create(in)
	fe := fieldErrors(t, err)
	assert.Contains(t, fe, "sale_type")
	assert.Contains(t, fe, "financier_name")
}

func TestOrder_LoanWithDetails(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["payment_type"] = "LOAN"
	in["financier_name"] = "SBI"
	in["finance_amount"] = 600000
	in["emi_amount"] = 18000
	in["tenure_months"] = 48
	o, err := s.Orders.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "600000", o.FinanceAmount.String())
}

func TestOrder_CashIgnoresFinanceDetails(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	o, err := s.Orders.Create(validOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240120-003", o.ID)
	assert.Equal(t, "Mike Johnson", o.CustomerName)
	assert.Equal(t, "Maruti Suzuki Fronx", o.ModelName)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.False(t, o.DateWarning)
}

func TestOrder_EnumsValidated(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["order_type"] = "USED"
	in["payment_type"] = "CARD"
	_, err := s.Orders.Create(in)
	fe := fieldErrors(t, err)
	assert.Equal(t, "Order type must be NEW or EXCHANGE", fe["order_type"])
	assert.Equal(t, "Payment type must be CASH or LOAN", fe["payment_type"])
}

func TestOrder_NoEnquiry(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["enquiry_id"] = "none"
	o, err := s.Orders.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "", o.EnquiryID)
	assert.Equal(t, "", o.ModelName)

	o, err = s.Orders.Update("ORD-20240115-001", map[string]any{"enquiry_id": "none"})
	require.NoError(t, err)
	assert.Equal(t, "", o.EnquiryID)
}

func TestOrder_DateWarning(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	in := validOrder()
	in["expected_delivery_date"] = "2024-02-20"
	o, err := s.Orders.Create(in)
	require.NoError(t, err)
	assert.True(t, o.DateWarning)

	o, err = s.Orders.Update(o.ID, map[string]any{"expected_delivery_date": "2024-03-10"})
	require.NoError(t, err)
	assert.False(t, o.DateWarning)
}

func TestOrder_TypeMismatchKeepsOtherErrors(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	input := validOrder()
	delete(input, "customer_id")
	input["tenure_months"] = "twelve"
	_, err := s.Orders.Create(input)
	fe := fieldErrors(t, err)
	assert.Equal(t, "Please select a customer", fe["customer_id"])
	assert.Equal(t, "tenure_months must be a int", fe["tenure_months"])
	assert.Len(t, fe, 2)
}

func TestPrice_BadDecimalKeyedByField(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Prices.Create(map[string]any{
		"order_id":       "",
		"booking_amount": 10000,
		"selling_price":  "abc",
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, "Please select an order", fe["order_id"])
	assert.Equal(t, "selling_price must be a number", fe["selling_price"])
	assert.NotContains(t, fe, "_")
}

func TestPrice_CreateDerivesTotals(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	p, err := s.Prices.Create(map[string]any{
		"order_id":       "ORD-20240115-001",
		"booking_amount": 10000,
		"selling_price":  800000,
		"gst_amount":     144000,
	})
	require.NoError(t, err)
	assert.Equal(t, "PRICE-003", p.ID)
	assert.Equal(t, "John Doe", p.CustomerName)
	assert.Equal(t, "Maruti Suzuki Fronx", p.ModelName)
	assert.Equal(t, "944000", p.TotalAmount.String())
	assert.Equal(t, "934000", p.BalanceAmount.String())
}

func TestPrice_UpdateRecomputesTotals(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	p, err := s.Prices.Update("PRICE-001", map[string]any{"discount_amount": 0})
	require.NoError(t, err)
	assert.Equal(t, "1465000", p.TotalAmount.String())
	assert.Equal(t, "1390000", p.BalanceAmount.String())
	assert.Equal(t, "1200000", p.SellingPrice.String())
}

func TestPrice_NegativeAmountRejected(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Prices.Create(map[string]any{
		"order_id":       "ORD-20240115-001",
		"booking_amount": 0,
		"selling_price":  -5,
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, "Selling price must be a positive number", fe["selling_price"])
}

func TestShipping_SameAsBillingCopiesAddress(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	sh, err := s.Shipping.Create(map[string]any{
		"order_id":           "ORD-20240114-002",
		"customer_name":      "Jane Smith",
		"is_same_as_billing": true,
		"contact_person":     "Jane Smith",
		"contact_number":     "9876543211",
		"delivery_date":      "2024-03-01",
		"delivery_time_slot": entity.TimeSlots[0],
	})
	require.NoError(t, err)
	assert.Equal(t, "SHIP-003", sh.ID)
	assert.Equal(t, "456 Park Avenue, Delhi", sh.ShippingAddress)
	assert.Equal(t, "New Delhi", sh.District)
	assert.Equal(t, "110001", sh.Pincode)
	assert.Equal(t, "Maruti Suzuki Baleno", sh.ModelName)
	assert.Equal(t, entity.ShippingStatusScheduled, sh.Status)
}

func TestShipping_SameAsBillingKeepsSubmittedAddress(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	sh, err := s.Shipping.Create(map[string]any{
		"order_id":           "ORD-20240114-002",
		"customer_name":      "Jane Smith",
		"is_same_as_billing": true,
		"shipping_address":   "Gate 4, Plant Road",
		"contact_person":     "Jane Smith",
		"contact_number":     "9876543211",
		"delivery_date":      "2024-03-01",
		"delivery_time_slot": entity.TimeSlots[0],
	})
	require.NoError(t, err)
	assert.Equal(t, "Gate 4, Plant Road", sh.ShippingAddress)
	assert.Equal(t, "New Delhi", sh.District)
	assert.Equal(t, "110001", sh.Pincode)
}

func TestShipping_PartialUpdateKeepsEditedAddress(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	sh, err := s.Shipping.Create(map[string]any{
		"order_id":           "ORD-20240114-002",
		"customer_name":      "Jane Smith",
		"is_same_as_billing": true,
		"contact_person":     "Jane Smith",
		"contact_number":     "9876543211",
		"delivery_date":      "2024-03-01",
		"delivery_time_slot": entity.TimeSlots[0],
	})
	require.NoError(t, err)
	require.Equal(t, "456 Park Avenue, Delhi", sh.ShippingAddress)

	updated, err := s.Shipping.Update(sh.ID, map[string]any{"shipping_address": "Warehouse 9, Ring Road"})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse 9, Ring Road", updated.ShippingAddress)
	assert.Equal(t, "110001", updated.Pincode)
	assert.True(t, updated.IsSameAsBilling)

	// 重新勾选时按账单地址回填
	refilled, err := s.Shipping.Update(sh.ID, map[string]any{"is_same_as_billing": true})
	require.NoError(t, err)
	assert.Equal(t, "456 Park Avenue, Delhi", refilled.ShippingAddress)
}

func TestShipping_AddressRequiredWithoutBilling(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	_, err := s.Shipping.Create(map[string]any{
		"order_id":           "ORD-20240114-002",
		"customer_name":      "Jane Smith",
		"contact_person":     "Jane Smith",
		"contact_number":     "9876543211",
		"delivery_date":      "2024-03-01",
		"delivery_time_slot": entity.TimeSlots[0],
	})
	fe := fieldErrors(t, err)
	assert.Contains(t, fe, "shipping_address")
	assert.Contains(t, fe, "pincode")
}

func TestBillingAddress(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	addr, err := s.BillingAddress("ORD-20240115-001")
	require.NoError(t, err)
	assert.Equal(t, "123 Main Street, Mumbai", addr.ShippingAddress)
	assert.Equal(t, "400001", addr.Pincode)

	_, err = s.BillingAddress("ORD-404")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStatusActions(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	c, err := s.ToggleColorAvailability("COLOR-004")
	require.NoError(t, err)
	assert.True(t, c.IsAvailable)

	draft, err := s.ConvertEnquiry("ENQ-001")
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", draft.CustomerID)
	assert.Equal(t, "ENQ-001", draft.EnquiryID)
	assert.Equal(t, "Maruti Suzuki Fronx", draft.ModelName)
	e, _ := s.Enquiries.Get("ENQ-001")
	assert.Equal(t, entity.EnquiryStatusConverted, e.Status)
	_, err = s.ConvertEnquiry("ENQ-001")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	o, err := s.ConfirmOrder("ORD-20240115-001")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, o.Status)
	_, err = s.ConfirmOrder("ORD-20240115-001")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	sh, err := s.DeliverShipping("SHIP-001")
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingStatusDelivered, sh.Status)
	_, err = s.DeliverShipping("SHIP-002")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDashboard(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	d := s.Dashboard()
	assert.Equal(t, 3, d.Totals["customers"])
	assert.Equal(t, 1, d.Enquiries[entity.EnquiryStatusPending])
	assert.Equal(t, 1, d.Orders[entity.OrderStatusConfirmed])
	assert.Equal(t, 1, d.Shipping[entity.ShippingStatusDelivered])
	assert.Equal(t, 2, d.FuelTypes[entity.FuelPetrol])
	assert.Equal(t, ColorStats{Available: 3, Unavailable: 1, Upcoming: 3}, d.Colors)
	assert.Equal(t, "150000", d.Revenue.Received.String())
	assert.Equal(t, "4120000", d.Revenue.Pending.String())
	assert.Equal(t, "2172500", d.Revenue.AverageOrderValue.String())
}

func TestExport(t *testing.T) {
	s := newTestServices(t, store.MissingReport)

	f, filename, err := s.Export("customers")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "customers_20240120.xlsx", filename)

	header, err := f.GetCellValue("customers", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Customer ID", header)
	name, err := f.GetCellValue("customers", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Mike Johnson", name)

	_, _, err = s.Export("invoices")
	assert.Error(t, err)
}
