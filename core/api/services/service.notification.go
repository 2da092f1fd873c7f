package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo
type NotificationService struct {
	*BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	notificationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Notification](notificationCollection),
	}, nil
}

// CreateNotification tạo thông báo cho một người dùng
func (s *NotificationService) CreateNotification(ctx context.Context, input *dto.NotificationCreateInput) (*models.Notification, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID người dùng không hợp lệ: %s", input.UserID),
			common.StatusBadRequest,
			err,
		)
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = "info"
	}
	priority := input.Priority
	if priority == "" {
		priority = "normal"
	}

	notification := models.Notification{
		UserID:    userID,
		Type:      notificationType,
		Priority:  priority,
		Title:     input.Title,
		Message:   input.Message,
		Data:      input.Data,
		ActionURL: input.ActionURL,
	}
	if input.ExpiresAt > 0 {
		expiresAt := time.UnixMilli(input.ExpiresAt)
		notification.ExpiresAt = &expiresAt
	}

	created, err := s.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByUser trả về thông báo của một người dùng, mới nhất trước
func (s *NotificationService) ListByUser(ctx context.Context, userID primitive.ObjectID, onlyUnread bool, limit int64) ([]models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	filter := bson.M{"userId": userID}
	if onlyUnread {
		filter["isRead"] = false
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

// CountUnread đếm số thông báo chưa đọc của một người dùng
func (s *NotificationService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
}

// MarkRead đánh dấu một thông báo đã đọc. Chỉ chủ sở hữu mới thao tác được
// trên thông báo của mình.
func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (*models.Notification, error) {
	notification, err := s.FindOne(ctx, bson.M{"_id": id, "userId": userID}, nil)
	if err != nil {
		return nil, err
	}

	if notification.IsRead {
		return &notification, nil
	}

	updated, err := s.UpdateById(ctx, id, &UpdateData{
		Set: map[string]interface{}{
			"isRead": true,
			"readAt": time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkAllRead đánh dấu toàn bộ thông báo chưa đọc của người dùng là đã đọc
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := s.UpdateMany(ctx, bson.M{"userId": userID, "isRead": false}, &UpdateData{
		Set: map[string]interface{}{
			"isRead": true,
			"readAt": time.Now().UnixMilli(),
		},
	}, nil)
	if err != nil {
		return 0, err
	}
	return result, nil
}

// DeleteOwned xóa một thông báo của chính người dùng
func (s *NotificationService) DeleteOwned(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := s.FindOne(ctx, bson.M{"_id": id, "userId": userID}, nil)
	if err != nil {
		return err
	}
	return s.DeleteById(ctx, id)
}
