// Package services holds the thin service layer the directory depends on.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studentdir/internal/client/client"
	"github.com/dmitrijs2005/studentdir/internal/client/models"
	"github.com/dmitrijs2005/studentdir/internal/logging"
)

// StudentService is the set of remote operations the directory issues.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, s models.Student) (models.Student, error)
	Update(ctx context.Context, id string, s models.Student, adminPassword string) (models.Student, error)
	Delete(ctx context.Context, id string, adminPassword string) error
}

type studentService struct {
	client client.Client
	log    logging.Logger
}

func NewStudentService(c client.Client, log logging.Logger) StudentService {
	return &studentService{client: c, log: log.With("component", "student_service")}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.client.List(ctx)
	if err != nil {
		s.log.Error(ctx, "list students failed", "error", fmt.Sprintf("%+v", err))
		return nil, fmt.Errorf("list students: %w", err)
	}
	s.log.Debug(ctx, "students listed", "count", len(students))
	return students, nil
}

func (s *studentService) Create(ctx context.Context, st models.Student) (models.Student, error) {
	created, err := s.client.Create(ctx, st)
	if err != nil {
		s.log.Error(ctx, "create student failed", "error", fmt.Sprintf("%+v", err))
		return models.Student{}, fmt.Errorf("create student: %w", err)
	}
	s.log.Info(ctx, "student created", "student_id", created.ID)
	return created, nil
}

func (s *studentService) Update(ctx context.Context, id string, st models.Student, adminPassword string) (models.Student, error) {
	updated, err := s.client.Update(ctx, id, st, adminPassword)
	if err != nil {
		s.log.Error(ctx, "update student failed", "student_id", id, "error", fmt.Sprintf("%+v", err))
		return models.Student{}, fmt.Errorf("update student %s: %w", id, err)
	}
	s.log.Info(ctx, "student updated", "student_id", id)
	return updated, nil
}

func (s *studentService) Delete(ctx context.Context, id string, adminPassword string) error {
	if err := s.client.Delete(ctx, id, adminPassword); err != nil {
		s.log.Error(ctx, "delete student failed", "student_id", id, "error", fmt.Sprintf("%+v", err))
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	s.log.Info(ctx, "student deleted", "student_id", id)
	return nil
}
