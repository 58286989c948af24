package usecase

import (
	"context"
	"errors"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/repository"
)

func newPatientUsecase(t *testing.T) PatientUsecase {
	t.Helper()
	return NewPatientUsecase(newTestLogger(), repository.NewPatientRepository(newTestDB(t)))
}

func TestRegisterAndGetPatient(t *testing.T) {
	u := newPatientUsecase(t)
	ctx := context.Background()

	registered, err := u.Register(ctx, &dto.CreatePatientRequest{
		Name:    "Alice",
		Age:     30,
		Gender:  "female",
		Phone:   "555-0101",
		Address: "12 Elm St",
		Disease: "flu",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.ID == 0 {
		t.Fatal("registered patient should get an id")
	}

	got, err := u.GetByID(ctx, registered.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Alice" || got.Disease != "flu" {
		t.Errorf("unexpected patient: %+v", got)
	}

	list, err := u.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("expected 1 patient, got %d", list.Total)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	u := newPatientUsecase(t)

	_, err := u.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDeletePatientUnknownIDIsNoOp(t *testing.T) {
	u := newPatientUsecase(t)
	ctx := context.Background()

	if err := u.Delete(ctx, 42); err != nil {
		t.Fatalf("deleting an unknown patient should be a no-op, got %v", err)
	}

	registered, err := u.Register(ctx, &dto.CreatePatientRequest{Name: "Bob", Age: 45, Gender: "male"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := u.Delete(ctx, registered.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, err := u.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("expected no patients after delete, got %d", list.Total)
	}
}
