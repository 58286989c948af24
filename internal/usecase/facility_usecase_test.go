package usecase

import (
	"context"
	"errors"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"
)

func newFacilityUsecase(t *testing.T) FacilityUsecase {
	t.Helper()
	return NewFacilityUsecase(newTestDB(t), newTestLogger(), repository.NewBedRepository())
}

func TestBedLifecycle(t *testing.T) {
	u := newFacilityUsecase(t)
	ctx := context.Background()

	bed, err := u.CreateBed(ctx, &dto.CreateBedRequest{RoomNo: "101", BedType: "general"})
	if err != nil {
		t.Fatalf("CreateBed failed: %v", err)
	}
	if bed.Availability != string(entity.BedAvailable) {
		t.Fatalf("new bed should be available, got %q", bed.Availability)
	}
	if bed.PatientID != nil {
		t.Fatalf("new bed should have no patient, got %v", *bed.PatientID)
	}

	assigned, err := u.AssignBed(ctx, bed.ID, 4)
	if err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}
	if assigned.Availability != string(entity.BedOccupied) {
		t.Errorf("assigned bed should be occupied, got %q", assigned.Availability)
	}
	if assigned.PatientID == nil || *assigned.PatientID != 4 {
		t.Errorf("assigned bed should hold patient 4, got %v", assigned.PatientID)
	}

	// A second assignment must not displace the current patient.
	_, err = u.AssignBed(ctx, bed.ID, 5)
	if !errors.Is(err, ErrBedUnavailable) {
		t.Fatalf("expected ErrBedUnavailable, got %v", err)
	}

	beds, err := u.GetAllBeds(ctx)
	if err != nil {
		t.Fatalf("GetAllBeds failed: %v", err)
	}
	if beds.Total != 1 || beds.Beds[0].PatientID == nil || *beds.Beds[0].PatientID != 4 {
		t.Errorf("rejected assignment should leave the bed unchanged: %+v", beds.Beds)
	}

	released, err := u.ReleaseBed(ctx, bed.ID)
	if err != nil {
		t.Fatalf("ReleaseBed failed: %v", err)
	}
	if released.Availability != string(entity.BedAvailable) {
		t.Errorf("released bed should be available, got %q", released.Availability)
	}
	if released.PatientID != nil {
		t.Errorf("released bed should have no patient, got %v", *released.PatientID)
	}

	// Releasing an already-available bed is a no-op.
	released, err = u.ReleaseBed(ctx, bed.ID)
	if err != nil {
		t.Fatalf("second ReleaseBed failed: %v", err)
	}
	if released.Availability != string(entity.BedAvailable) {
		t.Errorf("bed should stay available, got %q", released.Availability)
	}
}

func TestAssignBedNotFound(t *testing.T) {
	u := newFacilityUsecase(t)

	if _, err := u.AssignBed(context.Background(), 42, 1); !errors.Is(err, ErrBedNotFound) {
		t.Fatalf("expected ErrBedNotFound, got %v", err)
	}
	if _, err := u.ReleaseBed(context.Background(), 42); !errors.Is(err, ErrBedNotFound) {
		t.Fatalf("expected ErrBedNotFound, got %v", err)
	}
}
