package services

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCSVFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 99 ", 99},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12,5", 0}, // dấu phẩy thập phân không được hỗ trợ
	}
	for _, c := range cases {
		if got := parseCSVFloat(c.in); got != c.want {
			t.Errorf("parseCSVFloat(%q) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestParseCSVInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10", 10},
		{" 5 ", 5},
		{"", 0},
		{"x", 0},
		{"3.5", 0}, // số thực không phải số nguyên hợp lệ
	}
	for _, c := range cases {
		if got := parseCSVInt(c.in); got != c.want {
			t.Errorf("parseCSVInt(%q) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

// matchRegexFilter kiểm tra một giá trị có khớp với primitive.Regex trong filter không
func matchRegexFilter(t *testing.T, filter map[string]interface{}, field, value string) bool {
	t.Helper()
	rx, ok := filter[field].(primitive.Regex)
	if !ok {
		t.Fatalf("filter[%s] không phải primitive.Regex", field)
	}
	pattern := rx.Pattern
	if rx.Options == "i" {
		pattern = "(?i)" + pattern
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		t.Fatalf("pattern không hợp lệ: %v", err)
	}
	return matched
}

func TestSkuRegexFilter_CaseInsensitiveExactMatch(t *testing.T) {
	filter := skuRegexFilter("ABC-01")

	if !matchRegexFilter(t, filter, "sku", "abc-01") {
		t.Error("SKU phải khớp không phân biệt hoa thường")
	}
	if !matchRegexFilter(t, filter, "sku", "ABC-01") {
		t.Error("SKU phải khớp chính nó")
	}
	if matchRegexFilter(t, filter, "sku", "ABC-012") {
		t.Error("SKU chỉ được khớp chính xác, không khớp tiền tố")
	}
}

func TestSkuRegexFilter_EscapesSpecialChars(t *testing.T) {
	// SKU chứa ký tự đặc biệt của regex phải được escape
	filter := skuRegexFilter("A.B+C")

	if !matchRegexFilter(t, filter, "sku", "a.b+c") {
		t.Error("SKU có ký tự đặc biệt phải khớp đúng chuỗi gốc")
	}
	if matchRegexFilter(t, filter, "sku", "AXB+C") {
		t.Error("dấu chấm phải được hiểu là ký tự thường, không phải wildcard")
	}
}

func TestNameRegexFilter_CaseInsensitive(t *testing.T) {
	filter := nameRegexFilter("Elektronik")

	if !matchRegexFilter(t, filter, "name", "elektronik") {
		t.Error("tên danh mục phải khớp không phân biệt hoa thường")
	}
	if !matchRegexFilter(t, filter, "name", "ELEKTRONIK") {
		t.Error("tên danh mục viết hoa toàn bộ phải khớp")
	}
	if matchRegexFilter(t, filter, "name", "Elektronik Aksesuar") {
		t.Error("tên danh mục chỉ khớp chính xác toàn chuỗi")
	}
}
