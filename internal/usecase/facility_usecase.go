package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBedNotFound    = errors.New("bed not found")
	ErrBedUnavailable = errors.New("bed is not available")
)

type FacilityUsecase interface {
	CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error)
	GetAllBeds(ctx context.Context) (*dto.BedListResponse, error)
	AssignBed(ctx context.Context, bedID int, patientID int) (*dto.BedResponse, error)
	ReleaseBed(ctx context.Context, bedID int) (*dto.BedResponse, error)
}

type facilityUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	bedRepo repository.BedRepository
}

func NewFacilityUsecase(db *gorm.DB, log *logrus.Logger, bedRepo repository.BedRepository) FacilityUsecase {
	return &facilityUsecase{
		db:      db,
		log:     log,
		bedRepo: bedRepo,
	}
}

func (u *facilityUsecase) CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	bed := &entity.Bed{
		RoomNo:       req.RoomNo,
		BedType:      req.BedType,
		Availability: entity.BedAvailable,
	}

	if err := u.bedRepo.Create(u.db.WithContext(ctx), bed); err != nil {
		u.log.Warnf("Failed to create bed: %+v", err)
		return nil, err
	}

	u.log.Infof("Bed created: id=%d, room=%s, type=%s", bed.ID, bed.RoomNo, bed.BedType)
	return converter.BedToResponse(bed), nil
}

func (u *facilityUsecase) GetAllBeds(ctx context.Context) (*dto.BedListResponse, error) {
	beds, err := u.bedRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list beds: %+v", err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

// AssignBed occupies a bed for a patient. The occupy itself is a single
// guarded UPDATE, so two concurrent assignments to the same bed cannot both
// succeed.
func (u *facilityUsecase) AssignBed(ctx context.Context, bedID int, patientID int) (*dto.BedResponse, error) {
	bed, err := u.bedRepo.FindByID(u.db.WithContext(ctx), bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %d: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if !bed.IsAvailable() {
		return nil, ErrBedUnavailable
	}

	rows, err := u.bedRepo.Assign(u.db.WithContext(ctx), bedID, patientID)
	if err != nil {
		u.log.Warnf("Failed to assign bed %d: %+v", bedID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBedUnavailable
	}

	bed, err = u.bedRepo.FindByID(u.db.WithContext(ctx), bedID)
	if err != nil || bed == nil {
		u.log.Warnf("Failed to reload bed %d after assign: %+v", bedID, err)
		return nil, err
	}

	u.log.Infof("Bed assigned: bed=%d, patient=%d", bedID, patientID)
	return converter.BedToResponse(bed), nil
}

// ReleaseBed resets a bed to available and clears its patient, regardless of
// prior state. Releasing an already-available bed is a no-op.
func (u *facilityUsecase) ReleaseBed(ctx context.Context, bedID int) (*dto.BedResponse, error) {
	bed, err := u.bedRepo.FindByID(u.db.WithContext(ctx), bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %d: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	if err := u.bedRepo.Release(u.db.WithContext(ctx), bedID); err != nil {
		u.log.Warnf("Failed to release bed %d: %+v", bedID, err)
		return nil, err
	}

	bed, err = u.bedRepo.FindByID(u.db.WithContext(ctx), bedID)
	if err != nil || bed == nil {
		u.log.Warnf("Failed to reload bed %d after release: %+v", bedID, err)
		return nil, err
	}

	u.log.Infof("Bed released: bed=%d", bedID)
	return converter.BedToResponse(bed), nil
}
