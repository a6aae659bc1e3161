package service

import (
	"context"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"
)

// HasAccess decides whether an enrollment currently grants access to its
// course. Offline enrollments compare the instant against their own expiry;
// online enrollments defer to the product's registration deadline with a
// date-only comparison, an asymmetry inherited from the product model.
func HasAccess(enrollment *model.CourseEnrollment, now time.Time) bool {
	if !enrollment.IsActive {
		return false
	}

	product := &enrollment.Product
	if product.CourseType == model.CourseTypeOffline && enrollment.AccessExpiresAt != nil {
		return now.Before(*enrollment.AccessExpiresAt)
	}
	if product.CourseType == model.CourseTypeOnline && product.RegistrationDeadline != nil {
		return !dateAfter(now, *product.RegistrationDeadline)
	}

	return true
}

// dateAfter reports whether now falls on a later calendar day than the
// deadline. Deadlines are date-only columns stored at UTC midnight.
func dateAfter(now, deadline time.Time) bool {
	ny, nm, nd := now.Date()
	dy, dm, dd := deadline.UTC().Date()
	if ny != dy {
		return ny > dy
	}
	if nm != dm {
		return nm > dm
	}
	return nd > dd
}

type EnrollmentService interface {
	MyCourses(ctx context.Context, userID uint) ([]*dto.MyCourse, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo repository.EnrollmentRepository
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *enrollmentServiceImpl) MyCourses(ctx context.Context, userID uint) ([]*dto.MyCourse, error) {
	enrollments, err := s.enrollmentRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	courses := make([]*dto.MyCourse, len(enrollments))
	for i, e := range enrollments {
		courses[i] = &dto.MyCourse{
			ProductID:  e.ProductID,
			Title:      e.Product.Title,
			CourseType: string(e.Product.CourseType),
			HasAccess:  HasAccess(e, now),
			EnrolledAt: e.EnrolledAt,
		}
	}

	return courses, nil
}
