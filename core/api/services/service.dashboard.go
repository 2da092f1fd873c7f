package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// Cửa sổ thống kê của dashboard
const dashboardWindowDays = 30

// DashboardService là cấu trúc chứa các phương thức thống kê tổng hợp cho dashboard.
// Chỉ đọc, không ghi dữ liệu.
type DashboardService struct {
	orderService   *OrderService
	productService *ProductService
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	orderService, err := NewOrderService()
	if err != nil {
		return nil, err
	}
	productService, err := NewProductService()
	if err != nil {
		return nil, err
	}

	return &DashboardService{
		orderService:   orderService,
		productService: productService,
	}, nil
}

// percentChange tính phần trăm thay đổi giữa hai kỳ.
// Kỳ trước bằng 0 thì trả về 0 thay vì chia cho 0.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// windowFilter tạo filter đơn hàng trong khoảng [from, to) theo orderDate,
// loại trừ đơn đã hủy
func windowFilter(from, to time.Time) bson.M {
	return bson.M{
		"orderDate": bson.M{"$gte": from.UnixMilli(), "$lt": to.UnixMilli()},
		"status":    bson.M{"$ne": models.OrderStatusCancelled},
	}
}

// orderWindowSummary gom doanh thu và số đơn của một cửa sổ thời gian
type orderWindowSummary struct {
	Revenue float64
	Orders  int64
}

func (s *DashboardService) summarizeWindow(ctx context.Context, from, to time.Time) (*orderWindowSummary, error) {
	pipeline := []bson.M{
		{"$match": windowFilter(from, to)},
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$totalAmount"},
			"orders":  bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.orderService.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Revenue float64 `bson:"revenue"`
		Orders  int64   `bson:"orders"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	summary := &orderWindowSummary{}
	if len(rows) > 0 {
		summary.Revenue = rows[0].Revenue
		summary.Orders = rows[0].Orders
	}
	return summary, nil
}

// countCustomers đếm số khách hàng duy nhất (theo email) trong cửa sổ thời gian
func (s *DashboardService) countCustomers(ctx context.Context, from, to time.Time) (int64, error) {
	filter := windowFilter(from, to)
	filter["customer.email"] = bson.M{"$nin": []interface{}{nil, ""}}

	emails, err := s.orderService.Distinct(ctx, "customer.email", filter)
	if err != nil {
		return 0, err
	}
	return int64(len(emails)), nil
}

// GetStats trả về các chỉ số tổng quan: doanh thu / số đơn / số khách hàng
// trong 30 ngày gần nhất kèm phần trăm thay đổi so với 30 ngày liền trước,
// số sản phẩm active và số sản phẩm dưới ngưỡng tồn kho
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -dashboardWindowDays)
	prevWindowStart := now.AddDate(0, 0, -2*dashboardWindowDays)

	current, err := s.summarizeWindow(ctx, windowStart, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.summarizeWindow(ctx, prevWindowStart, windowStart)
	if err != nil {
		return nil, err
	}

	currentCustomers, err := s.countCustomers(ctx, windowStart, now)
	if err != nil {
		return nil, err
	}
	previousCustomers, err := s.countCustomers(ctx, prevWindowStart, windowStart)
	if err != nil {
		return nil, err
	}

	activeProducts, err := s.productService.CountDocuments(ctx, bson.M{"status": models.ProductStatusActive})
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productService.CountDocuments(ctx, bson.M{
		"status": models.ProductStatusActive,
		"$expr":  bson.M{"$lte": []interface{}{"$stock", "$minStock"}},
	})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Revenue: dto.DashboardMetric{
			Value:  current.Revenue,
			Change: percentChange(current.Revenue, previous.Revenue),
		},
		Orders: dto.DashboardMetric{
			Value:  float64(current.Orders),
			Change: percentChange(float64(current.Orders), float64(previous.Orders)),
		},
		Customers: dto.DashboardMetric{
			Value:  float64(currentCustomers),
			Change: percentChange(float64(currentCustomers), float64(previousCustomers)),
		},
		Products: dto.DashboardMetric{
			Value: float64(activeProducts),
		},
		LowStock: lowStock,
	}, nil
}

// GetSalesSeries trả về doanh thu và số đơn theo từng ngày trong 30 ngày gần
// nhất. Chuỗi luôn đủ 30 điểm, ngày không có đơn được điền 0.
func (s *DashboardService) GetSalesSeries(ctx context.Context) ([]dto.SalesPoint, error) {
	now := time.Now()
	// Tính từ 00:00 của ngày cách đây 29 ngày để đủ 30 ngày lịch
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(dashboardWindowDays - 1))

	pipeline := []bson.M{
		{"$match": windowFilter(startDay, now.Add(time.Minute))},
		{"$project": bson.M{
			"totalAmount": 1,
			"day": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$orderDate"},
			}},
		}},
		{"$group": bson.M{
			"_id":     "$day",
			"revenue": bson.M{"$sum": "$totalAmount"},
			"orders":  bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.orderService.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Day     string  `bson:"_id"`
		Revenue float64 `bson:"revenue"`
		Orders  int64   `bson:"orders"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	byDay := make(map[string]dto.SalesPoint, len(rows))
	for _, row := range rows {
		byDay[row.Day] = dto.SalesPoint{Date: row.Day, Revenue: row.Revenue, Orders: row.Orders}
	}

	// Điền đủ 30 ngày, gap được lấp bằng điểm 0
	series := make([]dto.SalesPoint, 0, dashboardWindowDays)
	for i := 0; i < dashboardWindowDays; i++ {
		day := startDay.AddDate(0, 0, i).Format("2006-01-02")
		if point, ok := byDay[day]; ok {
			series = append(series, point)
		} else {
			series = append(series, dto.SalesPoint{Date: day})
		}
	}
	return series, nil
}

// GetRecentOrders trả về các đơn hàng mới nhất theo thời gian tạo
func (s *DashboardService) GetRecentOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	return s.orderService.Find(ctx, bson.M{}, opts)
}

// topProductsPipeline dựng pipeline xếp hạng sản phẩm bán chạy:
// loại đơn hủy, gom theo productId, cắt còn 5 dòng rồi mới $lookup sang
// collection sản phẩm để lấy tồn kho hiện tại.
func topProductsPipeline() []bson.M {
	return []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": models.OrderStatusCancelled}}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      "$items.productId",
			"name":     bson.M{"$first": "$items.name"},
			"sku":      bson.M{"$first": "$items.sku"},
			"quantity": bson.M{"$sum": "$items.quantity"},
			"revenue":  bson.M{"$sum": "$items.totalPrice"},
		}},
		{"$sort": bson.M{"quantity": -1}},
		{"$limit": 5},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "product",
		}},
		{"$addFields": bson.M{
			"stock": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$product.stock", 0}},
				0,
			}},
		}},
	}
}

// GetTopProducts trả về 5 sản phẩm bán chạy nhất theo tổng số lượng đã bán,
// tính trên toàn bộ dòng hàng của mọi đơn không bị hủy, kèm tồn kho hiện tại
// lấy từ collection sản phẩm ($lookup sau khi đã cắt còn 5 dòng).
// Sản phẩm đã xóa khỏi catalog có stock = 0.
func (s *DashboardService) GetTopProducts(ctx context.Context) ([]dto.TopProduct, error) {
	pipeline := topProductsPipeline()

	cursor, err := s.orderService.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ProductID primitive.ObjectID `bson:"_id"`
		Name      string             `bson:"name"`
		SKU       string             `bson:"sku"`
		Quantity  int64              `bson:"quantity"`
		Revenue   float64            `bson:"revenue"`
		Stock     int64              `bson:"stock"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	top := make([]dto.TopProduct, 0, len(rows))
	for _, row := range rows {
		top = append(top, dto.TopProduct{
			ProductID: row.ProductID.Hex(),
			Name:      row.Name,
			SKU:       row.SKU,
			Quantity:  row.Quantity,
			Revenue:   row.Revenue,
			Stock:     row.Stock,
		})
	}
	return top, nil
}
