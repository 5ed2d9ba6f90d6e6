// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/handlers"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/precheck"
	"github.com/privacyops/dpia-platform/registry"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, rules precheck.Rules) *http.ServeMux {
	mux := http.NewServeMux()

	store := registry.NewStore(db)
	auditLog := audit.NewLogger(db)

	// Initialize handlers
	workspaceHandler := handlers.NewWorkspaceHandler(store, cfg)
	precheckHandler := handlers.NewPrecheckHandler(store, auditLog, cfg, rules)
	systemHandler := handlers.NewSystemHandler(store, auditLog, cfg)
	vendorHandler := handlers.NewVendorHandler(store, auditLog, cfg)
	categoryHandler := handlers.NewDataCategoryHandler(store, auditLog, cfg)
	activityHandler := handlers.NewActivityHandler(store, auditLog, cfg)
	locationHandler := handlers.NewLocationHandler(store, auditLog, cfg)
	jurisdictionHandler := handlers.NewJurisdictionHandler(store, auditLog, cfg)
	flowHandler := handlers.NewDataFlowHandler(store, auditLog, cfg)
	assessmentHandler := handlers.NewAssessmentHandler(store, auditLog, cfg)
	exportHandler := handlers.NewExportHandler(store, auditLog, cfg)
	dashboardHandler := handlers.NewDashboardHandler(store, cfg)
	auditHandler := handlers.NewAuditHandler(auditLog, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Workspaces
	mux.HandleFunc("POST /workspaces", middleware.WithLogging(workspaceHandler.Create))
	mux.HandleFunc("GET /workspaces/me", middleware.WithLogging(workspaceHandler.GetMe))

	// Article 35 pre-check
	mux.HandleFunc("GET /precheck/template", middleware.WithLogging(precheckHandler.GetTemplate))
	mux.HandleFunc("POST /precheck/submissions", middleware.WithLogging(precheckHandler.Submit))
	mux.HandleFunc("GET /precheck/results/{id}", middleware.WithLogging(precheckHandler.GetResult))

	// Registry collections
	registerCRUD(mux, "/registry/systems", crud{
		list: systemHandler.List, get: systemHandler.Get,
		create: systemHandler.Create, update: systemHandler.Update, del: systemHandler.Delete,
	})
	registerCRUD(mux, "/registry/vendors", crud{
		list: vendorHandler.List, get: vendorHandler.Get,
		create: vendorHandler.Create, update: vendorHandler.Update, del: vendorHandler.Delete,
	})
	registerCRUD(mux, "/registry/data-categories", crud{
		list: categoryHandler.List, get: categoryHandler.Get,
		create: categoryHandler.Create, update: categoryHandler.Update, del: categoryHandler.Delete,
	})
	registerCRUD(mux, "/registry/processing-activities", crud{
		list: activityHandler.List, get: activityHandler.Get,
		create: activityHandler.Create, update: activityHandler.Update, del: activityHandler.Delete,
	})
	registerCRUD(mux, "/registry/locations", crud{
		list: locationHandler.List, get: locationHandler.Get,
		create: locationHandler.Create, update: locationHandler.Update, del: locationHandler.Delete,
	})
	registerCRUD(mux, "/registry/jurisdictions", crud{
		list: jurisdictionHandler.List, get: jurisdictionHandler.Get,
		create: jurisdictionHandler.Create, update: jurisdictionHandler.Update, del: jurisdictionHandler.Delete,
	})
	registerCRUD(mux, "/registry/data-flows", crud{
		list: flowHandler.List, get: flowHandler.Get,
		create: flowHandler.Create, update: flowHandler.Update, del: flowHandler.Delete,
	})

	// DPIA wizard
	mux.HandleFunc("GET /assessments", middleware.WithLogging(assessmentHandler.List))
	mux.HandleFunc("POST /assessments", middleware.WithLogging(assessmentHandler.Create))
	mux.HandleFunc("GET /assessments/{id}", middleware.WithLogging(assessmentHandler.Get))
	mux.HandleFunc("PUT /assessments/{id}/steps/{step}", middleware.WithLogging(assessmentHandler.UpdateStep))
	mux.HandleFunc("POST /assessments/{id}/complete", middleware.WithLogging(assessmentHandler.Complete))
	mux.HandleFunc("DELETE /assessments/{id}", middleware.WithLogging(assessmentHandler.Delete))

	// Document export
	mux.HandleFunc("GET /assessments/{id}/export", middleware.WithLogging(exportHandler.AssessmentDocument))
	mux.HandleFunc("GET /registry/export", middleware.WithLogging(exportHandler.RegistryWorkbook))

	// Dashboard and audit trail
	mux.HandleFunc("GET /dashboard/summary", middleware.WithLogging(dashboardHandler.Summary))
	mux.HandleFunc("GET /audit/events", middleware.WithLogging(auditHandler.List))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dpia-platform API v1"))
	})

	return mux
}

type crud struct {
	list, get, create, update, del http.HandlerFunc
}

// registerCRUD wires the uniform registry route shape for one collection.
func registerCRUD(mux *http.ServeMux, base string, h crud) {
	mux.HandleFunc("GET "+base, middleware.WithLogging(h.list))
	mux.HandleFunc("POST "+base, middleware.WithLogging(h.create))
	mux.HandleFunc("GET "+base+"/{id}", middleware.WithLogging(h.get))
	mux.HandleFunc("PUT "+base+"/{id}", middleware.WithLogging(h.update))
	mux.HandleFunc("DELETE "+base+"/{id}", middleware.WithLogging(h.del))
}
