package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
)

// TestNextOrderNumber kiểm tra cách tính sequence số đơn hàng trong ngày.
func TestNextOrderNumber(t *testing.T) {
	prefix := OrderNumberPrefixAdmin + time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC).Format("060102")
	if prefix != "SP260831" {
		t.Fatalf("Prefix ngày không đúng: %s", prefix)
	}

	// Chưa có đơn nào trong ngày thì bắt đầu từ 0001
	got := nextOrderNumber(prefix, "")
	if got != "SP2608310001" {
		t.Errorf("Số đơn đầu ngày không đúng: %s", got)
	}

	// Có đơn rồi thì cộng 1 vào sequence lớn nhất
	got = nextOrderNumber(prefix, "SP2608310012")
	if got != "SP2608310013" {
		t.Errorf("Số đơn kế tiếp không đúng: %s", got)
	}

	// Sequence vượt 4 chữ số vẫn cộng tiếp, không quay vòng
	got = nextOrderNumber(prefix, "SP26083110000")
	if got != "SP26083110001" {
		t.Errorf("Số đơn vượt 4 chữ số không đúng: %s", got)
	}

	// Đuôi không parse được thì bắt đầu lại từ 0001
	got = nextOrderNumber(prefix, prefix+"xxxx")
	if got != "SP2608310001" {
		t.Errorf("Đuôi hỏng phải reset về 0001, nhận được: %s", got)
	}
}

// TestNextOrderNumber_Format đảm bảo số đơn sinh ra đúng định dạng cho cả
// đơn quản trị lẫn đơn storefront.
func TestNextOrderNumber_Format(t *testing.T) {
	now := time.Now()
	pattern := regexp.MustCompile(`^(SP|SF)\d{10}$`)

	for _, prefix := range []string{OrderNumberPrefixAdmin, OrderNumberPrefixStorefront} {
		datePrefix := prefix + now.Format("060102")
		got := nextOrderNumber(datePrefix, "")
		if !pattern.MatchString(got) {
			t.Errorf("Số đơn %s không đúng định dạng", got)
		}
	}
}

// TestToOrderCustomer_ToOrderAddress kiểm tra việc chuyển đổi dữ liệu đầu vào
// sang cấu trúc nhúng trong đơn hàng.
func TestToOrderCustomer_ToOrderAddress(t *testing.T) {
	customer := toOrderCustomer(&dto.OrderCustomerInput{
		Name:    "Nguyễn Văn A",
		Email:   "a@example.com",
		Phone:   "0900000001",
		Company: "Công ty A",
	})
	if customer.Name != "Nguyễn Văn A" || customer.Email != "a@example.com" ||
		customer.Phone != "0900000001" || customer.Company != "Công ty A" {
		t.Errorf("Thông tin khách hàng chuyển đổi không khớp: %+v", customer)
	}

	address := toOrderAddress(&dto.OrderAddressInput{
		Street:  "1 Lê Lợi",
		City:    "Hồ Chí Minh",
		State:   "HCM",
		ZipCode: "700000",
		Country: "VN",
	})
	if address.Street != "1 Lê Lợi" || address.City != "Hồ Chí Minh" ||
		address.State != "HCM" || address.ZipCode != "700000" || address.Country != "VN" {
		t.Errorf("Địa chỉ chuyển đổi không khớp: %+v", address)
	}
}
