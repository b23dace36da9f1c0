package router

import (
	"time"

	"github.com/RosaLopezC/D05/internal/config"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/handler"
	"github.com/RosaLopezC/D05/internal/middleware"
	"github.com/RosaLopezC/D05/internal/repository"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	vendedorRepo := repository.NewVendedorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	detalleVentaRepo := repository.NewDetalleVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, proveedorRepo)
	vendedorSvc := service.NewVendedorService(vendedorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, vendedorRepo)
	detalleVentaSvc := service.NewDetalleVentaService(detalleVentaRepo, ventaRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	uploads := cfg.UploadStoragePath
	categoriasH := handler.NewCategoriasHandler(categoriaSvc, productoSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc, productoSvc, uploads)
	productosH := handler.NewProductosHandler(productoSvc, uploads)
	vendedoresH := handler.NewVendedoresHandler(vendedorSvc, uploads)
	clientesH := handler.NewClientesHandler(clienteSvc, uploads)
	ventasH := handler.NewVentasHandler(ventaSvc, uploads)
	detalleVentasH := handler.NewDetalleVentasHandler(detalleVentaSvc, uploads)
	adminH := handler.NewAdminHandler(exchange.NuevoRegistro(time.Now()))

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		v1.GET("/registro", adminH.Registro)

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.ObtenerPorID)
			categorias.GET("/:id/productos", categoriasH.ListarProductos)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.POST("/export", categoriasH.Exportar)
		}

		proveedores := v1.Group("/proveedores")
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.ObtenerPorID)
			proveedores.GET("/:id/productos", proveedoresH.ListarProductos)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Eliminar)
			proveedores.POST("/export", proveedoresH.Exportar)
			proveedores.POST("/import", proveedoresH.Importar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
			productos.POST("/stock/masivo", productosH.StockMasivo)
			productos.POST("/export", productosH.Exportar)
			productos.POST("/import", productosH.Importar)
		}

		vendedores := v1.Group("/vendedores")
		{
			vendedores.POST("", vendedoresH.Crear)
			vendedores.GET("", vendedoresH.Listar)
			vendedores.GET("/:id", vendedoresH.ObtenerPorID)
			vendedores.PUT("/:id", vendedoresH.Actualizar)
			vendedores.DELETE("/:id", vendedoresH.Eliminar)
			vendedores.POST("/export", vendedoresH.Exportar)
			vendedores.POST("/import", vendedoresH.Importar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
			clientes.POST("/export", clientesH.Exportar)
			clientes.POST("/import", clientesH.Importar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.GET("/:id/detalles", ventasH.ListarDetalles)
			ventas.PUT("/:id", ventasH.Actualizar)
			ventas.DELETE("/:id", ventasH.Eliminar)
			ventas.POST("/export", ventasH.Exportar)
			ventas.POST("/import", ventasH.Importar)
		}

		detalles := v1.Group("/detalle_ventas")
		{
			detalles.POST("", detalleVentasH.Crear)
			detalles.GET("", detalleVentasH.Listar)
			detalles.GET("/:id", detalleVentasH.ObtenerPorID)
			detalles.PUT("/:id", detalleVentasH.Actualizar)
			detalles.DELETE("/:id", detalleVentasH.Eliminar)
			detalles.POST("/export", detalleVentasH.Exportar)
			detalles.POST("/import", detalleVentasH.Importar)
		}
	}

	return r
}
