package repository

import (
	"context"
	"timeweave/core/database"
	"timeweave/core/logger"
	"timeweave/core/params"
	"timeweave/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	db database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, creator_id, meeting_id, title, message, type, data, is_read, created_at, updated_at)
		VALUES (:id, :creator_id, :meeting_id, :title, :message, :type, :data, :is_read, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		logger.Error("NotificationRepository:Create", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) GetByCreatorID(ctx context.Context, creatorID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM notifications WHERE creator_id = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, creatorID)
	if err != nil {
		logger.Error("NotificationRepository:GetByCreatorID:Count", "error", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var notifications []entity.Notification
	err = r.db.SelectContext(ctx, &notifications, query, creatorID, params.PageSize, offset)
	if err != nil {
		logger.Error("NotificationRepository:GetByCreatorID:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedNotificationEntity{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, creatorID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true WHERE creator_id = ? AND id IN (?)`, creatorID, ids)
	if err != nil {
		return err
	}

	query = r.db.SQLx().Rebind(query)
	if err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, creatorID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE creator_id = $1`
	if err := r.db.ExecContext(ctx, query, creatorID); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, creatorID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE creator_id = $1 AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, creatorID); err != nil {
		logger.Error("NotificationRepository:CountUnread", "error", err)
		return 0, err
	}
	return count, nil
}
