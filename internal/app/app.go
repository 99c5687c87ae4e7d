package app

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadspun/tailorstore/internal/adapters/httpserver"
	"github.com/threadspun/tailorstore/internal/adapters/repo/postgres"
	"github.com/threadspun/tailorstore/internal/adapters/storage/localfs"
	"github.com/threadspun/tailorstore/internal/domain"
	"github.com/threadspun/tailorstore/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	CatalogUC *usecase.CatalogUC
	OrderUC   *usecase.OrderUC
	Storage   domain.FileStorage
}

func NewApp(db *gorm.DB) (*App, error) {
	designRepo := postgres.NewDesignRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	storageDir := os.Getenv("STORAGE_DIR")
	if storageDir == "" {
		storageDir = "uploads"
	}
	_ = os.MkdirAll(storageDir, 0755)

	a := &App{DB: db}
	a.CatalogUC = &usecase.CatalogUC{Designs: designRepo}
	a.OrderUC = &usecase.OrderUC{Orders: orderRepo, Designs: designRepo}
	a.Storage = localfs.New(storageDir)
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CatalogUC, a.OrderUC, a.Storage)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(&domain.Design{}, &domain.Order{}); err != nil {
		return err
	}

	var count int64
	if err := a.DB.Model(&domain.Design{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		seedDesigns(a.DB)
	}
	return nil
}

func seedDesigns(db *gorm.DB) {
	d := domain.Design{
		ID:       uuid.New(),
		Name:     "Garden Leaf Print",
		Color:    "White / Green",
		Fabric:   "Organza",
		ImageURL: "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?auto=format&fit=crop&q=80&w=400",

		ChildType: domain.ChildTypeNone,
	}
	d.Inventory.Men = domain.AdultStock{XXL: 9, XXXL: 3}
	d.Inventory.Boys = domain.KidsStock{Age0to1: 20, Age1to2: 3, Age4to5: 2, Age5to6: 6, Age6to7: 3, Age7to8: 1, Age9to10: 3, Age13to14: 3}
	d.Inventory.Girls = domain.KidsStock{Age0to1: 2, Age2to3: 5, Age3to4: 6, Age5to6: 4, Age6to7: 2, Age9to10: 3, Age11to12: 2}
	db.Create(&d)
}
