package routes

import (
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/controllers"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		auth := api.Group("/", middlewares.Auth())
		{
			auth.GET("/auth/profile", controllers.Profile)
			auth.PUT("/auth/password", controllers.ChangePassword)

			categories := auth.Group("/categories")
			{
				categories.GET("/", controllers.GetAllCategories)
				categories.GET("/:id", controllers.GetCategoryByID)
				categories.POST("/", controllers.CreateCategory)
				categories.PUT("/:id", controllers.UpdateCategory)
				categories.DELETE("/:id", controllers.DeleteCategory)
			}

			products := auth.Group("/inventory/products")
			{
				products.GET("/", controllers.GetAllProducts)
				products.GET("/:id", controllers.GetProductByID)
				products.POST("/", controllers.CreateProduct)
				products.PATCH("/:id", controllers.PatchProduct)
				products.DELETE("/:id", controllers.DeleteProduct)
			}

			tables := auth.Group("/tables")
			{
				tables.GET("/", controllers.GetAllTables)
				tables.GET("/:id", controllers.GetTableByID)
				tables.POST("/", controllers.CreateTable)
				tables.PUT("/:id", controllers.UpdateTable)
				tables.DELETE("/:id", controllers.DeleteTable)
				tables.POST("/:id/items", controllers.AddTabItem)
			}

			groups := auth.Group("/table-groups")
			{
				groups.GET("/", controllers.GetAllTableGroups)
				groups.POST("/", controllers.CreateTableGroup)
			}

			tabs := auth.Group("/tabs")
			{
				tabs.PUT("/:id/items/:productId", controllers.UpdateTabItemQuantity)
				tabs.DELETE("/:id/items/:productId", controllers.RemoveTabItem)
				tabs.POST("/:id/close", controllers.CloseTab)
				tabs.POST("/:id/split", controllers.SplitTab)
			}

			register := auth.Group("/cash-register")
			{
				register.GET("/", controllers.CurrentRegister)
				register.POST("/", controllers.OpenRegister)
				register.PUT("/", controllers.CloseRegister)
				register.GET("/transactions", controllers.ListRegisterTransactions)
				register.POST("/transactions", controllers.AddRegisterTransaction)
			}

			sales := auth.Group("/sales")
			{
				sales.GET("/", controllers.ListSales)
				sales.GET("/reports", controllers.GetSalesReport)
				sales.GET("/:id", controllers.SaleDetail)
				sales.DELETE("/:id", controllers.CancelSale)
			}

			vouchers := auth.Group("/vouchers")
			{
				vouchers.GET("/", controllers.ListVouchers)
				vouchers.POST("/", controllers.CreateVoucher)
			}

			purchases := auth.Group("/purchases")
			{
				purchases.GET("/", controllers.ListPurchases)
				purchases.GET("/:id", controllers.PurchaseDetail)
				purchases.POST("/", controllers.CreatePurchase)
			}

			auth.GET("/store", controllers.GetStore)

			admin := auth.Group("/admin", middlewares.RequireRole("ADMIN"))
			{
				admin.GET("/users", controllers.AdminListUsers)
				admin.POST("/users", controllers.AdminCreateUser)
				admin.PUT("/users/:id", controllers.AdminUpdateUser)
				admin.PUT("/store", controllers.UpdateStore)
			}
		}
	}
}
