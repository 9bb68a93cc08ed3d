package controller

import (
	"log"
	"net/http"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/application/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogController maneja las peticiones HTTP del catálogo.
// La navegación del catálogo es de solo lectura y NO está bloqueada por el
// estado de la caja: el cajero puede consultar inventario con la caja cerrada.
type CatalogController struct {
	listProductsUC   *usecase.ListProductsUseCase
	searchProductsUC *usecase.SearchProductsUseCase
	listCategoriesUC *usecase.ListCategoriesUseCase
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(
	listProductsUC *usecase.ListProductsUseCase,
	searchProductsUC *usecase.SearchProductsUseCase,
	listCategoriesUC *usecase.ListCategoriesUseCase,
) *CatalogController {
	return &CatalogController{
		listProductsUC:   listProductsUC,
		searchProductsUC: searchProductsUC,
		listCategoriesUC: listCategoriesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("/products", c.ListProducts)
		catalog.GET("/categories", c.ListCategories)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/catalog/products?category=&search=")
	log.Println("  GET    /api/v1/catalog/categories")
}

// ListProducts lista el catálogo, con filtro de categoría o búsqueda por nombre
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	category := ctx.Query("category")
	search := ctx.Query("search")

	if search != "" {
		products, err := c.searchProductsUC.Execute(ctx.Request.Context(), search)
		if err != nil {
			log.Printf("Error searching products: %v", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"items":       products,
			"total_count": len(products),
		})
		return
	}

	products, err := c.listProductsUC.Execute(ctx.Request.Context(), category)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": len(products),
	})
}

// ListCategories lista la taxonomía de categorías
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.listCategoriesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       categories,
		"total_count": len(categories),
	})
}
