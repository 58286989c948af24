package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"html/template"
	"net/http"
	"strconv"

	"go-hospital-management/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// noticeCookie identifies the browser for one-shot flash notices
const noticeCookie = "hms_notice"

// FlashStore keeps one-shot user notices across a redirect
type FlashStore interface {
	Set(ctx context.Context, token string, message string) error
	Pop(ctx context.Context, token string) (string, error)
}

// Handler serves the form-encoded HTML surface. Business-rule and validation
// failures flash a notice and redirect back to a safe page; successful posts
// redirect to the relevant listing.
type Handler struct {
	log              *logrus.Logger
	flash            FlashStore
	patientUsecase   usecase.PatientUsecase
	doctorUsecase    usecase.DoctorUsecase
	nurseUsecase     usecase.NurseUsecase
	facilityUsecase  usecase.FacilityUsecase
	pharmacyUsecase  usecase.PharmacyUsecase
	canteenUsecase   usecase.CanteenUsecase
	billingUsecase   usecase.BillingUsecase
	dashboardUsecase usecase.DashboardUsecase
	adminUsecase     usecase.AdminUsecase
	tmpl             *template.Template
}

func NewHandler(
	log *logrus.Logger,
	flash FlashStore,
	patientUsecase usecase.PatientUsecase,
	doctorUsecase usecase.DoctorUsecase,
	nurseUsecase usecase.NurseUsecase,
	facilityUsecase usecase.FacilityUsecase,
	pharmacyUsecase usecase.PharmacyUsecase,
	canteenUsecase usecase.CanteenUsecase,
	billingUsecase usecase.BillingUsecase,
	dashboardUsecase usecase.DashboardUsecase,
	adminUsecase usecase.AdminUsecase,
) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:              log,
		flash:            flash,
		patientUsecase:   patientUsecase,
		doctorUsecase:    doctorUsecase,
		nurseUsecase:     nurseUsecase,
		facilityUsecase:  facilityUsecase,
		pharmacyUsecase:  pharmacyUsecase,
		canteenUsecase:   canteenUsecase,
		billingUsecase:   billingUsecase,
		dashboardUsecase: dashboardUsecase,
		adminUsecase:     adminUsecase,
		tmpl:             tmpl,
	}, nil
}

// pageData is what every template receives
type pageData struct {
	Notice string
	Data   interface{}
}

// render executes the named page template with any pending notice popped in.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	notice := ""
	if cookie, err := r.Cookie(noticeCookie); err == nil {
		notice, err = h.flash.Pop(r.Context(), cookie.Value)
		if err != nil {
			// A lost notice is not worth failing the page for.
			notice = ""
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, &pageData{Notice: notice, Data: data}); err != nil {
		h.log.Errorf("Failed to render %s: %+v", name, err)
	}
}

// redirectWithNotice flashes a message for this browser and 303-redirects.
func (h *Handler) redirectWithNotice(w http.ResponseWriter, r *http.Request, target string, message string) {
	token := h.noticeToken(w, r)
	if err := h.flash.Set(r.Context(), token, message); err != nil {
		h.log.Warnf("Failed to flash notice: %+v", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// noticeToken returns the browser's flash token, minting the cookie on first
// use.
func (h *Handler) noticeToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(noticeCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := newNoticeToken()
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return token
}

func newNoticeToken() string {
	randomBytes := make([]byte, 16)
	rand.Read(randomBytes)
	return hex.EncodeToString(randomBytes)
}

// formInt parses a required integer form field
func formInt(r *http.Request, field string) (int, error) {
	return strconv.Atoi(r.PostFormValue(field))
}

// pathInt parses an integer path variable
func pathInt(r *http.Request, field string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[field])
}
