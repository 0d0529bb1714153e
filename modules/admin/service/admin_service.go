package service

import (
	"context"
	"math"

	"timeweave/core/errors"
	"timeweave/core/params"
	"timeweave/modules/admin/dto"
	"timeweave/modules/admin/repository"
)

type AdminService struct {
	repo repository.AdminRepositoryInterface
}

type AdminServiceInterface interface {
	GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, *errors.AppError)
	ListMeetings(ctx context.Context, queryParams params.QueryParams, status string) (*dto.PaginatedAdminMeetingResponse, *errors.AppError)
}

func NewAdminService(repo repository.AdminRepositoryInterface) AdminServiceInterface {
	return &AdminService{repo: repo}
}

func (s *AdminService) GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, *errors.AppError) {
	stats, err := s.repo.GetSystemStats(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to collect stats", err)
	}

	return &dto.SystemStatsResponse{
		TotalMeetings:      stats.TotalMeetings,
		DraftMeetings:      stats.DraftMeetings,
		ActiveMeetings:     stats.ActiveMeetings,
		LockedMeetings:     stats.LockedMeetings,
		CancelledMeetings:  stats.CancelledMeetings,
		TotalParticipants:  stats.TotalParticipants,
		RespondedCount:     stats.RespondedCount,
		TotalBusyIntervals: stats.TotalBusyIntervals,
		AvgResponseRate:    math.Round(stats.AvgResponseRate*1000) / 10,
	}, nil
}

func (s *AdminService) ListMeetings(ctx context.Context, queryParams params.QueryParams, status string) (*dto.PaginatedAdminMeetingResponse, *errors.AppError) {
	rows, total, err := s.repo.ListMeetings(ctx, queryParams, status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list meetings", err)
	}

	items := make([]dto.AdminMeetingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.AdminMeetingItem{
			ID:               row.ID,
			Title:            row.Title,
			Status:           row.Status,
			Timezone:         row.Timezone,
			ParticipantCount: row.ParticipantCount,
			RespondedCount:   row.RespondedCount,
			ResponseDeadline: row.ResponseDeadline,
			CreatedAt:        row.CreatedAt,
		})
	}

	return &dto.PaginatedAdminMeetingResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}
