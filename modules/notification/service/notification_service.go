package service

import (
	"context"
	"timeweave/core/params"
	"timeweave/modules/notification/dto"
	"timeweave/modules/notification/entity"
	"timeweave/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		CreatorID: req.CreatorID,
		MeetingID: req.MeetingID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Data:      entity.JSONB(req.Data),
		IsRead:    false,
	}
	if notif.Data == nil {
		notif.Data = entity.JSONB{}
	}
	notif.StampNew()
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, creatorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByCreatorID(ctx, creatorID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, creatorID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, creatorID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, creatorID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, creatorID)
}

func (s *NotificationService) CountUnread(ctx context.Context, creatorID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, creatorID)
}
