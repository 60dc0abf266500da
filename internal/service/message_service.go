package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

type messageService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewMessageService(repo repository.Repository, logger *zap.Logger) MessageService {
	return &messageService{
		repo:   repo,
		logger: logger,
	}
}

// GetMessages retrieves forwarded messages with pagination, newest first.
func (s *messageService) GetMessages(ctx context.Context, q MessageQuery) (*models.MessageList, error) {
	if q.Page < 1 {
		return nil, ErrInvalidPage
	}
	if q.Limit < 1 || q.Limit > MaxPageLimit {
		return nil, ErrInvalidLimit
	}

	msgType := models.MessageType(strings.ToUpper(string(q.Type)))
	switch msgType {
	case "", models.MessageTypeSMS, models.MessageTypeCall:
	default:
		return nil, ErrInvalidType
	}

	filter := models.MessageFilter{
		Query:  strings.TrimSpace(q.Query),
		Type:   msgType,
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	}

	messages, err := s.repo.Message().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	totalCount, err := s.repo.Message().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / q.Limit
	if int(totalCount)%q.Limit > 0 {
		totalPages++
	}

	return &models.MessageList{
		Messages: messages,
		Pagination: models.Pagination{
			CurrentPage:  q.Page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: q.Limit,
		},
	}, nil
}

func (s *messageService) GetStats(ctx context.Context) (*models.MessageStats, error) {
	total, err := s.repo.Message().Count(ctx, models.MessageFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	sms, err := s.repo.Message().CountByType(ctx, models.MessageTypeSMS)
	if err != nil {
		return nil, fmt.Errorf("failed to count sms: %w", err)
	}

	calls, err := s.repo.Message().CountByType(ctx, models.MessageTypeCall)
	if err != nil {
		return nil, fmt.Errorf("failed to count calls: %w", err)
	}

	return &models.MessageStats{Total: total, SMS: sms, Calls: calls}, nil
}

func (s *messageService) GetLogs(ctx context.Context, limit int) ([]*models.LogEntry, error) {
	if limit < 1 || limit > MaxLogLimit {
		return nil, ErrInvalidLimit
	}

	entries, err := s.repo.Log().List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}
	return entries, nil
}

func (s *messageService) ClearLogs(ctx context.Context) error {
	if err := s.repo.Log().DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	s.logger.Info("Logs cleared")
	return nil
}
