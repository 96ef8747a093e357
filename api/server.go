package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sunwaytravel/tripsearch/config"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/holidayindex"
	"github.com/sunwaytravel/tripsearch/validation"
)

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	catalog    *catalog.Store
	index      *holidayindex.Service
	validator  *validation.Validator
	logger     logger.Logger
}

func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)

	defer cancel()

	s := &server{
		config: cfg,
		logger: logger.New(),
	}
	if err := s.setupDependencies(); err != nil {
		return err
	}
	s.buildInitialIndex()
	s.setupRouter()
	s.setupHTTPServer()
	s.setupGracefulShutdown(ctx)

	return nil
}

func (s *server) setupDependencies() error {
	var err error
	s.catalog, err = catalog.New(s.logger, s.config.GetCatalogDBPath())
	if err != nil {
		s.logger.Error("error opening catalog store", "err", err.Error())
		return err
	}
	s.index = holidayindex.New(s.logger)
	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	return nil

}

// buildInitialIndex seeds the keyword index from the stored catalog so the
// filter search path works before the first explicit rebuild request.
func (s *server) buildInitialIndex() {
	packages, err := s.catalog.ListPackages()
	if err != nil {
		s.logger.Error("could not load packages for initial index build", "err", err.Error())
		return
	}
	s.index.Build(packages)
}

func (s *server) setupRouter() {
	router := newRouter()

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, s.logger, s.config, s.catalog, s.index, s.validator)

	s.router = router
}

func (s *server) setupHTTPServer() {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.config.GetPort()),
		Handler: s.router.Handler(),
	}
	s.httpServer = httpServer
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()
}

func (s *server) setupGracefulShutdown(ctx context.Context) {

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Info("starting to shut down http server")
		shutdownCtx := context.Background()
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 10*time.Second)
		defer cancel()
		s.catalog.Close()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error shutting down http server", "err", err)
			return
		}
		s.logger.Info("shut down http server successfully")
	}()

	wg.Wait()
}
