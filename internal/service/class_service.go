package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

// ClassService serves the class overview with enrolled student counts.
type ClassService interface {
	List(ctx context.Context) ([]dto.ClassSummary, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService creates the ClassService.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) List(ctx context.Context) ([]dto.ClassSummary, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("list classes failed", zap.Error(err))
		return nil, err
	}

	summaries := make([]dto.ClassSummary, 0, len(classes))
	for _, class := range classes {
		count, err := s.repo.User.CountStudentsByClass(ctx, class.ClassID)
		if err != nil {
			s.logger.Error("count students failed", zap.String("class_id", class.ClassID), zap.Error(err))
			return nil, err
		}
		summaries = append(summaries, dto.ClassSummary{
			ClassID:       class.ClassID,
			TotalStudents: count,
		})
	}
	return summaries, nil
}
