package services

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"tăng gấp rưỡi", 150, 100, 50},
		{"giảm một nửa", 50, 100, -50},
		{"không đổi", 100, 100, 0},
		{"kỳ trước bằng 0", 500, 0, 0},
		{"cả hai bằng 0", 0, 0, 0},
		{"về 0", 0, 80, -100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := percentChange(c.current, c.previous); got != c.want {
				t.Errorf("percentChange(%v, %v) = %v, muốn %v", c.current, c.previous, got, c.want)
			}
		})
	}
}

func TestWindowFilter(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	filter := windowFilter(from, to)

	dateRange, ok := filter["orderDate"].(bson.M)
	if !ok {
		t.Fatal("filter thiếu điều kiện orderDate")
	}
	if dateRange["$gte"] != from.UnixMilli() {
		t.Errorf("cận dưới phải là %d, nhận được %v", from.UnixMilli(), dateRange["$gte"])
	}
	if dateRange["$lt"] != to.UnixMilli() {
		t.Errorf("cận trên phải là %d (exclusive), nhận được %v", to.UnixMilli(), dateRange["$lt"])
	}

	status, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatal("filter thiếu điều kiện status")
	}
	if status["$ne"] != "cancelled" {
		t.Errorf("đơn cancelled phải bị loại khỏi thống kê, filter: %v", status)
	}
}

// TestTopProductsPipeline_JoinsCurrentStock đảm bảo bảng xếp hạng bán chạy
// join sang collection sản phẩm để lấy tồn kho hiện tại, và chỉ join sau khi
// đã cắt còn 5 dòng.
func TestTopProductsPipeline_JoinsCurrentStock(t *testing.T) {
	global.MongoDB_ColNames.Products = "products"

	pipeline := topProductsPipeline()

	limitIdx, lookupIdx, stockIdx := -1, -1, -1
	for i, stage := range pipeline {
		if _, ok := stage["$limit"]; ok {
			limitIdx = i
		}
		if lookup, ok := stage["$lookup"].(bson.M); ok {
			lookupIdx = i
			if lookup["from"] != "products" {
				t.Errorf("$lookup phải join sang collection sản phẩm, nhận được %v", lookup["from"])
			}
			if lookup["localField"] != "_id" || lookup["foreignField"] != "_id" {
				t.Errorf("$lookup phải join theo productId, nhận được %v", lookup)
			}
		}
		if fields, ok := stage["$addFields"].(bson.M); ok {
			if _, ok := fields["stock"]; ok {
				stockIdx = i
			}
		}
	}

	if lookupIdx == -1 {
		t.Fatal("pipeline thiếu stage $lookup lấy tồn kho hiện tại")
	}
	if stockIdx == -1 {
		t.Fatal("pipeline thiếu field stock trong kết quả")
	}
	if limitIdx == -1 || limitIdx > lookupIdx {
		t.Error("$limit phải đứng trước $lookup để chỉ join 5 dòng")
	}
	if pipeline[limitIdx]["$limit"] != 5 {
		t.Errorf("bảng xếp hạng phải giới hạn 5 sản phẩm, nhận được %v", pipeline[limitIdx]["$limit"])
	}
}
