package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/staybooking/api"
	"github.com/Domenick1991/staybooking/config"
	"github.com/Domenick1991/staybooking/internal/repository"
	"github.com/Domenick1991/staybooking/internal/service/booking"
	"github.com/Domenick1991/staybooking/internal/service/listings"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	listingSvc listings.ListingUseCase,
	bookingSvc booking.BookingUseCase,
	wallets repository.WalletRepository,
) error {
	httpSrv := newServer(cfg, listingSvc, bookingSvc, wallets)

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(
	cfg *config.Config,
	listingSvc listings.ListingUseCase,
	bookingSvc booking.BookingUseCase,
	wallets repository.WalletRepository,
) *http.Server {
	router := gin.Default()

	api.NewListingHandler(listingSvc).Register(router.Group("/api/listings"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/api/bookings"))
	api.NewWalletHandler(wallets).Register(router.Group("/api/wallet"))

	if cfg.HTTP.SwaggerFile != "" {
		router.StaticFile("/swagger.json", cfg.HTTP.SwaggerFile)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger.json"))))
	}

	return &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}
}
