package routes

import (
	"net/http"
	"strings"

	"sreedamodar/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, fn http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	consignmentHandler *handlers.ConsignmentHandler,
	lrHandler *handlers.LRHandler,
	reportHandler *handlers.ReportHandler,
	driverHandler *handlers.DriverHandler,
	customerHandler *handlers.CustomerHandler,
	enquiryHandler *handlers.EnquiryHandler,
	profileHandler *handlers.ProfileHandler,
) {
	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	// Consignment routes
	handle("/consignments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			consignmentHandler.CreateConsignment(w, r)
		case http.MethodGet:
			consignmentHandler.GetAllConsignments(w, r)
		case http.MethodPut:
			consignmentHandler.UpdateConsignment(w, r)
		case http.MethodDelete:
			consignmentHandler.DeleteConsignment(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/consignments/lr", lrHandler.DownloadLR)
	handle("/consignments/export", reportHandler.ExportCSV)
	handle("/consignments/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/consignments/")
		if id != "" {
			consignmentHandler.GetConsignmentByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	// Reports
	handle("/reports/summary", reportHandler.GetSummary)

	// Driver directory
	handle("/drivers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			driverHandler.CreateDriver(w, r)
		case http.MethodGet:
			driverHandler.GetAllDrivers(w, r)
		case http.MethodDelete:
			driverHandler.DeleteDriver(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Customer directory
	handle("/customers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			customerHandler.CreateCustomer(w, r)
		case http.MethodGet:
			customerHandler.GetAllCustomers(w, r)
		case http.MethodDelete:
			customerHandler.DeleteCustomer(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Enquiries / future bookings
	handle("/enquiries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			enquiryHandler.CreateEnquiry(w, r)
		case http.MethodGet:
			enquiryHandler.GetAllEnquiries(w, r)
		case http.MethodDelete:
			enquiryHandler.DeleteEnquiry(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/enquiries/convert", enquiryHandler.ConvertEnquiry)

	// Company profiles
	handle("/profiles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			profileHandler.SaveProfile(w, r)
		case http.MethodGet:
			profileHandler.GetProfiles(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/profiles/", func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/profiles/")
		if code != "" {
			profileHandler.GetProfileByCode(w, r, code)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
}
