package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"goji.io"
	"goji.io/pat"

	"github.com/lvasseur/carte-des-talents/internal/admin"
	"github.com/lvasseur/carte-des-talents/internal/auth"
	"github.com/lvasseur/carte-des-talents/internal/config"
	"github.com/lvasseur/carte-des-talents/internal/database"
	"github.com/lvasseur/carte-des-talents/internal/metrics"
	"github.com/lvasseur/carte-des-talents/internal/middleware"
	"github.com/lvasseur/carte-des-talents/internal/session"
	"github.com/lvasseur/carte-des-talents/internal/talent"
	"github.com/lvasseur/carte-des-talents/internal/user"
)

func main() {
	// charger la config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erreur lors du chargement de la configuration: %v", err)
	}

	// initialiser la DB ; une base injoignable au démarrage est fatale
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Erreur lors de la connexion à la base de données: %v", err)
	}
	defer db.Close()

	// exec les migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Erreur lors de l'exécution des migrations: %v", err)
	}

	// init les metriques
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// init les repos
	userRepo := user.NewPostgresRepository(db)
	talentRepo := talent.NewPostgresRepository(db)

	// init les services
	authService := auth.NewService(userRepo)
	talentService := talent.NewService(talentRepo, appMetrics)
	sessionManager := session.NewManager(cfg.Session.CookieName)

	// compte admin par defaut
	if err := authService.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatalf("Erreur lors de l'initialisation du compte admin: %v", err)
	}

	// init les handlers
	authHandlers := auth.NewHandlers(authService, sessionManager)
	talentHandlers := talent.NewHandlers(talentService)
	adminHandlers := admin.NewHandlers(talentService, authService)

	// init les middlewares
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)
	metricsMiddleware := middleware.NewMetricsMiddleware(appMetrics)

	// creation multiplexeur goji
	mux := goji.NewMux()
	mux.Use(middleware.SecurityHeaders)
	mux.Use(middleware.RequestLogger)
	mux.Use(metricsMiddleware.Observe)

	// API d'auth ; logout reste public pour rester idempotent
	mux.HandleFunc(pat.Post("/api/auth/register"), authHandlers.RegisterHandler)
	mux.HandleFunc(pat.Post("/api/auth/login"), authHandlers.LoginHandler)
	mux.HandleFunc(pat.Post("/api/auth/logout"), authHandlers.LogoutHandler)
	mux.HandleFunc(pat.Get("/api/auth/me"), authHandlers.MeHandler)

	// repertoire des talents, reserve aux appelants connectes
	mux.Handle(pat.Get("/api/talents"), authMiddleware.RequireAuth(http.HandlerFunc(talentHandlers.ListHandler)))
	mux.Handle(pat.Post("/api/talents"), authMiddleware.RequireAuth(http.HandlerFunc(talentHandlers.CreateHandler)))
	mux.Handle(pat.Get("/api/talents/skills"), authMiddleware.RequireAuth(http.HandlerFunc(talentHandlers.SkillsHandler)))
	mux.Handle(pat.Get("/api/talents/search"), authMiddleware.RequireAuth(http.HandlerFunc(talentHandlers.SearchHandler)))

	// tableau de bord admin
	mux.Handle(pat.Get("/api/admin/stats"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.StatsHandler)))
	mux.Handle(pat.Get("/api/admin/talents"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.ListTalentsHandler)))
	mux.Handle(pat.Patch("/api/admin/talents/:id/toggle-verify"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.ToggleVerifyHandler)))
	mux.Handle(pat.Get("/api/admin/users"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.ListUsersHandler)))
	mux.Handle(pat.Post("/api/admin/create-admin"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.CreateAdminHandler)))
	mux.Handle(pat.Post("/api/admin/create-user"), authMiddleware.RequireAdmin(http.HandlerFunc(adminHandlers.CreateUserHandler)))

	// observabilite
	mux.Handle(pat.Get("/metrics"), promhttp.Handler())
	mux.HandleFunc(pat.Get("/health"), healthHandler(db))

	// start le serv
	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Serveur démarré sur http://localhost%s\n", serverAddr)
	log.Fatal(http.ListenAndServe(serverAddr, mux))
}

// healthHandler vérifie que la base de données répond
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
		w.Write([]byte(`{"status": "ok"}`))
	}
}
