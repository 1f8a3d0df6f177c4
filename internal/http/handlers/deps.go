package handlers

import (
	"bobamenu/internal/catalog"
	"bobamenu/internal/config"
	"bobamenu/internal/repos"
	"bobamenu/internal/services"
)

type Deps struct {
	BrandHandler    *BrandHandler
	DrinkHandler    *DrinkHandler
	FavoriteHandler *FavoriteHandler
	EditorHandler   *EditorHandler
	SearchHandler   *SearchHandler
	MediaHandler    *MediaHandler
}

func NewDeps(store *catalog.Store, index *repos.DrinkIndex, cfg config.Config) *Deps {
	catalogSvc := services.NewCatalogService(store, index)
	favSvc := services.NewFavoriteService(store)
	editSvc := services.NewEditorService(store, cfg.MaxImageBytes)
	exportSvc := services.NewExportService(store)

	return &Deps{
		BrandHandler:    &BrandHandler{Catalog: catalogSvc, Fav: favSvc, Export: exportSvc},
		DrinkHandler:    &DrinkHandler{Catalog: catalogSvc},
		FavoriteHandler: &FavoriteHandler{Fav: favSvc},
		EditorHandler:   &EditorHandler{Editor: editSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		MediaHandler:    &MediaHandler{Catalog: catalogSvc},
	}
}
