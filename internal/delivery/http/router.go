package http

import (
	"net/http"

	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/delivery/web"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	nurseHandler      *handler.NurseHandler
	facilityHandler   *handler.FacilityHandler
	pharmacyHandler   *handler.PharmacyHandler
	canteenHandler    *handler.CanteenHandler
	billingHandler    *handler.BillingHandler
	dashboardHandler  *handler.DashboardHandler
	adminHandler      *handler.AdminHandler
	webHandler        *web.Handler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	nurseHandler *handler.NurseHandler,
	facilityHandler *handler.FacilityHandler,
	pharmacyHandler *handler.PharmacyHandler,
	canteenHandler *handler.CanteenHandler,
	billingHandler *handler.BillingHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
	webHandler *web.Handler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		nurseHandler:      nurseHandler,
		facilityHandler:   facilityHandler,
		pharmacyHandler:   pharmacyHandler,
		canteenHandler:    canteenHandler,
		billingHandler:    billingHandler,
		dashboardHandler:  dashboardHandler,
		adminHandler:      adminHandler,
		webHandler:        webHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient management
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Staff management
	api.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/nurses", r.nurseHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/nurses", r.nurseHandler.GetAll).Methods(http.MethodGet)

	// Beds
	api.HandleFunc("/beds", r.facilityHandler.CreateBed).Methods(http.MethodPost)
	api.HandleFunc("/beds", r.facilityHandler.GetAllBeds).Methods(http.MethodGet)
	api.HandleFunc("/beds/{id}/assign", r.facilityHandler.AssignBed).Methods(http.MethodPost)
	api.HandleFunc("/beds/{id}/release", r.facilityHandler.ReleaseBed).Methods(http.MethodPost)

	// Pharmacy
	api.HandleFunc("/medicines", r.pharmacyHandler.CreateMedicine).Methods(http.MethodPost)
	api.HandleFunc("/medicines", r.pharmacyHandler.GetAllMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}/purchase", r.pharmacyHandler.Purchase).Methods(http.MethodPost)

	// Canteen
	api.HandleFunc("/canteen/items", r.canteenHandler.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/canteen/items", r.canteenHandler.GetAllItems).Methods(http.MethodGet)
	api.HandleFunc("/canteen/orders", r.canteenHandler.PlaceOrder).Methods(http.MethodPost)
	api.HandleFunc("/canteen/orders", r.canteenHandler.GetAllOrders).Methods(http.MethodGet)

	// Billing
	api.HandleFunc("/bills", r.billingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bills", r.billingHandler.GetAll).Methods(http.MethodGet)

	// Dashboard
	api.HandleFunc("/dashboard", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/reset-demo", r.adminHandler.ResetDemo).Methods(http.MethodPost)

	// HTML surface
	r.router.HandleFunc("/", r.webHandler.Home).Methods(http.MethodGet)
	r.router.HandleFunc("/dashboard", r.webHandler.Dashboard).Methods(http.MethodGet)

	r.router.HandleFunc("/patients", r.webHandler.PatientsPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_patient", r.webHandler.AddPatientPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_patient", r.webHandler.AddPatient).Methods(http.MethodPost)
	r.router.HandleFunc("/delete_patient/{id}", r.webHandler.DeletePatient).Methods(http.MethodPost)

	r.router.HandleFunc("/doctors", r.webHandler.DoctorsPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_doctor", r.webHandler.AddDoctorPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_doctor", r.webHandler.AddDoctor).Methods(http.MethodPost)
	r.router.HandleFunc("/delete_doctor/{id}", r.webHandler.DeleteDoctor).Methods(http.MethodPost)

	r.router.HandleFunc("/nurses", r.webHandler.NursesPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_nurse", r.webHandler.AddNursePage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_nurse", r.webHandler.AddNurse).Methods(http.MethodPost)

	r.router.HandleFunc("/beds", r.webHandler.BedsPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_bed", r.webHandler.AddBedPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_bed", r.webHandler.AddBed).Methods(http.MethodPost)
	r.router.HandleFunc("/assign_bed", r.webHandler.AssignBed).Methods(http.MethodPost)
	r.router.HandleFunc("/release_bed/{id}", r.webHandler.ReleaseBed).Methods(http.MethodPost)

	r.router.HandleFunc("/medicines", r.webHandler.MedicinesPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_medicine", r.webHandler.AddMedicinePage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_medicine", r.webHandler.AddMedicine).Methods(http.MethodPost)
	r.router.HandleFunc("/buy_medicine", r.webHandler.BuyMedicine).Methods(http.MethodPost)

	r.router.HandleFunc("/canteen", r.webHandler.CanteenPage).Methods(http.MethodGet)
	r.router.HandleFunc("/add_canteen_item", r.webHandler.AddCanteenItem).Methods(http.MethodPost)
	r.router.HandleFunc("/order_food", r.webHandler.OrderFoodPage).Methods(http.MethodGet)
	r.router.HandleFunc("/order_food", r.webHandler.OrderFood).Methods(http.MethodPost)
	r.router.HandleFunc("/orders", r.webHandler.OrdersPage).Methods(http.MethodGet)

	r.router.HandleFunc("/billing", r.webHandler.BillingPage).Methods(http.MethodGet)
	r.router.HandleFunc("/billing", r.webHandler.CreateBill).Methods(http.MethodPost)
	r.router.HandleFunc("/bills", r.webHandler.BillsPage).Methods(http.MethodGet)

	r.router.HandleFunc("/reset-demo", r.webHandler.ResetDemo).Methods(http.MethodPost)

	// Add middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
