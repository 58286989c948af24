package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newFacilityHandler(t *testing.T) (*FacilityHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.Bed{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	facilityUsecase := usecase.NewFacilityUsecase(db, log, repository.NewBedRepository())
	return NewFacilityHandler(facilityUsecase, validator.NewValidator()), db
}

func assignRequest(bedID int, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/beds/"+strconv.Itoa(bedID)+"/assign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(bedID)})
}

func TestAssignBedEndpoint(t *testing.T) {
	handler, db := newFacilityHandler(t)

	bed := entity.Bed{RoomNo: "101", BedType: "general", Availability: entity.BedAvailable}
	if err := db.Create(&bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.AssignBed(rec, assignRequest(bed.ID, `{"patient_id": 4}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Availability string `json:"availability"`
			PatientID    *int   `json:"patient_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success || body.Data.Availability != "occupied" || body.Data.PatientID == nil || *body.Data.PatientID != 4 {
		t.Errorf("unexpected response body: %s", rec.Body.String())
	}

	// Assigning an occupied bed is a business-rule rejection.
	rec = httptest.NewRecorder()
	handler.AssignBed(rec, assignRequest(bed.ID, `{"patient_id": 5}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for occupied bed, got %d", rec.Code)
	}

	// Unknown beds are a 404.
	rec = httptest.NewRecorder()
	handler.AssignBed(rec, assignRequest(999, `{"patient_id": 4}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown bed, got %d", rec.Code)
	}
}

func TestReleaseBedEndpoint(t *testing.T) {
	handler, db := newFacilityHandler(t)

	patientID := 4
	bed := entity.Bed{RoomNo: "102", BedType: "icu", Availability: entity.BedOccupied, PatientID: &patientID}
	if err := db.Create(&bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/beds/"+strconv.Itoa(bed.ID)+"/release", nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(bed.ID)})
	rec := httptest.NewRecorder()
	handler.ReleaseBed(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var reloaded entity.Bed
	if err := db.First(&reloaded, bed.ID).Error; err != nil {
		t.Fatalf("failed to reload bed: %v", err)
	}
	if reloaded.Availability != entity.BedAvailable || reloaded.PatientID != nil {
		t.Errorf("released bed should be available with no patient: %+v", reloaded)
	}
}
