package usecase

import (
	"context"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type NurseUsecase interface {
	Create(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error)
	GetAll(ctx context.Context) (*dto.NurseListResponse, error)
}

type nurseUsecase struct {
	log       *logrus.Logger
	nurseRepo repository.NurseRepository
}

func NewNurseUsecase(log *logrus.Logger, nurseRepo repository.NurseRepository) NurseUsecase {
	return &nurseUsecase{
		log:       log,
		nurseRepo: nurseRepo,
	}
}

func (u *nurseUsecase) Create(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error) {
	// assigned_to is a weak doctor reference; a dangling id is accepted.
	nurse := &entity.Nurse{
		Name:       req.Name,
		AssignedTo: req.AssignedTo,
		Shift:      req.Shift,
	}

	if err := u.nurseRepo.Create(ctx, nurse); err != nil {
		u.log.Warnf("Failed to create nurse: %+v", err)
		return nil, err
	}

	u.log.Infof("Nurse created: id=%d, name=%s, shift=%s", nurse.ID, nurse.Name, nurse.Shift)
	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) GetAll(ctx context.Context) (*dto.NurseListResponse, error) {
	nurses, err := u.nurseRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list nurses: %+v", err)
		return nil, err
	}

	return &dto.NurseListResponse{
		Nurses: converter.NursesToResponses(nurses),
		Total:  len(nurses),
	}, nil
}
