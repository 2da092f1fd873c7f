package utility

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	id := String2ObjectID(hex)
	if ObjectID2String(id) != hex {
		t.Errorf("ObjectID chuyển đổi không khớp: %s", ObjectID2String(id))
	}

	// Chuỗi không hợp lệ trả về NilObjectID
	if String2ObjectID("khong-hop-le") != primitive.NilObjectID {
		t.Error("Chuỗi không hợp lệ phải trả về NilObjectID")
	}
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	ids := StringArray2ObjectIDArray([]string{
		"507f1f77bcf86cd799439011",
		"507f1f77bcf86cd799439012",
	})
	if len(ids) != 2 {
		t.Fatalf("Số lượng ObjectID không đúng: %d", len(ids))
	}
	if ids[0].Hex() != "507f1f77bcf86cd799439011" || ids[1].Hex() != "507f1f77bcf86cd799439012" {
		t.Errorf("Nội dung mảng ObjectID không khớp: %v", ids)
	}
}

func TestP2Int64(t *testing.T) {
	cases := []struct {
		input    interface{}
		expected int64
	}{
		{json.Number("42"), 42},
		{"17", 17},
		{int64(9), 9},
		{5, 5},
		{3.9, 3},
		{"abc", 0},
		{nil, 0},
	}
	for _, c := range cases {
		if got := P2Int64(c.input); got != c.expected {
			t.Errorf("P2Int64(%v) = %d, mong đợi %d", c.input, got, c.expected)
		}
	}
}

func TestP2Float64(t *testing.T) {
	cases := []struct {
		input    interface{}
		expected float64
	}{
		{json.Number("2.5"), 2.5},
		{"1.25", 1.25},
		{float64(9.5), 9.5},
		{int64(4), 4},
		{7, 7},
		{"abc", 0},
		{nil, 0},
	}
	for _, c := range cases {
		if got := P2Float64(c.input); got != c.expected {
			t.Errorf("P2Float64(%v) = %v, mong đợi %v", c.input, got, c.expected)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains([]int{1, 2}, 3) {
		t.Error("Contains không được tìm thấy phần tử không có trong slice")
	}
}
