package services

import (
	"fmt"
	"strings"

	"github.com/sonquang/laixe-registry/internal/app/models"
	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/pkg/apperrors"
	"github.com/sonquang/laixe-registry/internal/store"
)

// TeacherService defines the interface for reading the teacher collection
type TeacherService interface {
	ListTeachers(filter store.Filter) dto.TeacherListResponse
	GetTeacher(id string) (*models.TeacherRecord, error)
	SearchTeacher(query string, filter store.Filter) (*models.TeacherRecord, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	store *store.TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(st *store.TeacherStore) TeacherService {
	return &teacherServiceImpl{store: st}
}

// ListTeachers returns the records matching the filter in insertion order
func (s *teacherServiceImpl) ListTeachers(filter store.Filter) dto.TeacherListResponse {
	teachers := s.store.List(filter)
	return dto.TeacherListResponse{
		Teachers: teachers,
		Total:    len(teachers),
		Filter:   string(filter),
	}
}

// GetTeacher returns the record with the exact identifier
func (s *teacherServiceImpl) GetTeacher(id string) (*models.TeacherRecord, error) {
	rec, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return &rec, nil
}

// SearchTeacher finds the first record matching the query within the filter.
// The query matches the identifier exactly or the full name as a substring,
// both case-insensitive.
func (s *teacherServiceImpl) SearchTeacher(query string, filter store.Filter) (*models.TeacherRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", apperrors.ErrValidationFailed)
	}
	rec, ok := s.store.Find(query, filter)
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return &rec, nil
}
