package http

import (
	"net/http"

	"transfer-backend/internal/handlers"
	"transfer-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	vehicleHandler *handlers.VehicleHandler,
	priceListHandler *handlers.PriceListHandler,
	transferHandler *handlers.TransferHandler,
	requestHandler *handlers.ServiceRequestHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/healthz", healthHandler.Check).Methods("GET")
	r.HandleFunc("/healthz/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Authenticated profile
	r.Handle("/current-user", authMiddleware.Authenticate(http.HandlerFunc(authHandler.CurrentUser))).Methods("GET")

	// Users - admin only
	usersAPI := r.PathPrefix("/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	// Vehicles
	vehiclesAPI := r.PathPrefix("/vehicles").Subrouter()
	vehiclesAPI.Use(authMiddleware.Authenticate)
	vehiclesAPI.HandleFunc("", vehicleHandler.ListVehicles).Methods("GET")
	vehiclesAPI.HandleFunc("", vehicleHandler.CreateVehicle).Methods("POST")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.GetVehicle).Methods("GET")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.UpdateVehicle).Methods("PUT")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.DeleteVehicle).Methods("DELETE")

	// Price lists
	pricesAPI := r.PathPrefix("/prices").Subrouter()
	pricesAPI.Use(authMiddleware.Authenticate)
	pricesAPI.HandleFunc("", priceListHandler.ListPriceLists).Methods("GET")
	pricesAPI.HandleFunc("", priceListHandler.CreatePriceList).Methods("POST")
	pricesAPI.HandleFunc("/{id}", priceListHandler.GetPriceList).Methods("GET")
	pricesAPI.HandleFunc("/{id}", priceListHandler.UpdatePriceList).Methods("PUT")
	pricesAPI.HandleFunc("/{id}", priceListHandler.DeletePriceList).Methods("DELETE")

	// Transfers - role scoping happens in the service layer
	transfersAPI := r.PathPrefix("/transfers").Subrouter()
	transfersAPI.Use(authMiddleware.Authenticate)
	transfersAPI.HandleFunc("", transferHandler.ListTransfers).Methods("GET")
	transfersAPI.HandleFunc("", transferHandler.CreateTransfer).Methods("POST")
	transfersAPI.HandleFunc("/{id}", transferHandler.GetTransfer).Methods("GET")
	transfersAPI.HandleFunc("/{id}", transferHandler.UpdateTransfer).Methods("PUT")
	transfersAPI.HandleFunc("/{id}", transferHandler.DeleteTransfer).Methods("DELETE")

	// Service requests
	requestsAPI := r.PathPrefix("/requests").Subrouter()
	requestsAPI.Use(authMiddleware.Authenticate)
	requestsAPI.HandleFunc("", requestHandler.ListRequests).Methods("GET")
	requestsAPI.HandleFunc("", requestHandler.CreateRequest).Methods("POST")
	requestsAPI.HandleFunc("/{id}", requestHandler.GetRequest).Methods("GET")
	requestsAPI.HandleFunc("/{id}/approve", requestHandler.ApproveRequest).Methods("POST")

	// Daily reports
	reportsAPI := r.PathPrefix("/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("", reportHandler.ListReports).Methods("GET")
	reportsAPI.HandleFunc("", reportHandler.GenerateReport).Methods("POST")
	reportsAPI.HandleFunc("/{id}", reportHandler.GetReport).Methods("GET")
	reportsAPI.HandleFunc("/{id}/pdf", reportHandler.DownloadReportPDF).Methods("GET")

	return r
}
