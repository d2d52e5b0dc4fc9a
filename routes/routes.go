package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/handlers"
	"github.com/MDYUS/quoteadmin-sub000/middleware"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/login/code", handlers.LoginWithCode).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")

	registerResourceRoutes(api)
	registerReminderRoutes(api)
	registerDeviceRoutes(api)
	registerExportRoutes(api)

	api.HandleFunc("/state/{key}", handlers.GetAppState).Methods("GET")
	api.HandleFunc("/state/{key}", handlers.PutAppState).Methods("PUT")
	api.HandleFunc("/dashboard/stats", handlers.GetDashboardStats).Methods("GET")

	// =====================================================
	// Admin Routes (owner only)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole([]string{models.RoleOwner}))
	admin.HandleFunc("/users", handlers.GetAllUsers).Methods("GET")
	admin.HandleFunc("/users", handlers.Register).Methods("POST")

	return r
}

// registerResourceRoutes registers all entity CRUD routes
func registerResourceRoutes(api *mux.Router) {
	registerCRUDRoutes(api, "/leads", crudHandlers{
		getAll: handlers.GetAllLeads,
		create: handlers.CreateLead,
		getOne: handlers.GetLead,
		update: handlers.UpdateLead,
		delete: handlers.DeleteLead,
	})
	api.HandleFunc("/leads/{id}/status", handlers.UpdateLeadStatus).Methods("PATCH")

	registerCRUDRoutes(api, "/site-visits", crudHandlers{
		getAll: handlers.GetAllSiteVisits,
		create: handlers.CreateSiteVisit,
		getOne: handlers.GetSiteVisit,
		update: handlers.UpdateSiteVisit,
		delete: handlers.DeleteSiteVisit,
	})

	registerCRUDRoutes(api, "/projects", crudHandlers{
		getAll: handlers.GetAllProjects,
		create: handlers.CreateProject,
		getOne: handlers.GetProject,
		update: handlers.UpdateProject,
		delete: handlers.DeleteProject,
	})

	registerCRUDRoutes(api, "/team", crudHandlers{
		getAll: handlers.GetAllTeamMembers,
		create: handlers.CreateTeamMember,
		getOne: handlers.GetTeamMember,
		update: handlers.UpdateTeamMember,
		delete: handlers.DeleteTeamMember,
	})

	registerCRUDRoutes(api, "/payments", crudHandlers{
		getAll: handlers.GetAllPayments,
		create: handlers.CreatePayment,
		getOne: handlers.GetPayment,
		update: handlers.UpdatePayment,
		delete: handlers.DeletePayment,
	})
	api.HandleFunc("/payments/{id}/paid", handlers.MarkPaymentPaid).Methods("POST")

	registerCRUDRoutes(api, "/invoices", crudHandlers{
		getAll: handlers.GetAllInvoices,
		create: handlers.CreateInvoice,
		getOne: handlers.GetInvoice,
		update: handlers.UpdateInvoice,
		delete: handlers.DeleteInvoice,
	})
	api.HandleFunc("/invoices/{id}/pdf", handlers.GetInvoicePDF).Methods("GET")

	registerCRUDRoutes(api, "/quotes", crudHandlers{
		getAll: handlers.GetAllQuotes,
		create: handlers.CreateQuote,
		getOne: handlers.GetQuote,
		update: handlers.UpdateQuote,
		delete: handlers.DeleteQuote,
	})
	api.HandleFunc("/quotes/{id}/convert", handlers.ConvertQuoteToInvoice).Methods("POST")

	registerCRUDRoutes(api, "/comm-logs", crudHandlers{
		getAll: handlers.GetAllCommLogs,
		create: handlers.CreateCommLog,
		getOne: handlers.GetCommLog,
		update: handlers.UpdateCommLog,
		delete: handlers.DeleteCommLog,
	})
}

// registerReminderRoutes registers the alert feed and its dismissal actions
func registerReminderRoutes(api *mux.Router) {
	api.HandleFunc("/reminders", handlers.GetReminders).Methods("GET")
	api.HandleFunc("/reminders/stale/ack", handlers.AckStaleLeads).Methods("POST")
	api.HandleFunc("/reminders/monthend/dismiss", handlers.DismissMonthEndAlert).Methods("POST")
	api.HandleFunc("/reminders/weekly/dismiss", handlers.DismissWeeklyAlert).Methods("POST")
	api.HandleFunc("/reminders/payment/dismiss", handlers.DismissPaymentAlert).Methods("POST")
}

// registerDeviceRoutes registers device registration, heartbeat and the
// realtime list stream
func registerDeviceRoutes(api *mux.Router) {
	api.HandleFunc("/devices", handlers.GetAllDevices).Methods("GET")
	api.HandleFunc("/devices", handlers.RegisterDevice).Methods("POST")
	api.HandleFunc("/devices/{id}/heartbeat", handlers.DeviceHeartbeat).Methods("POST")
	api.HandleFunc("/devices/{id}", handlers.DeleteDevice).Methods("DELETE")
	api.HandleFunc("/devices/stream", handlers.StreamDevices).Methods("GET")
}

// registerExportRoutes registers document generation endpoints
func registerExportRoutes(api *mux.Router) {
	api.HandleFunc("/leads/export/excel", handlers.ExportLeadsExcel).Methods("GET")
	api.HandleFunc("/leads/export/csv", handlers.ExportLeadsCSV).Methods("GET")
	api.HandleFunc("/reports/leads/pdf", handlers.GetMonthlyLeadReportPDF).Methods("GET")
}

// =====================================================
// CRUD Route Registration Helper
// =====================================================

type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}
