package router

import (
	"strings"

	"menuai/api"
	"menuai/config"
	_ "menuai/docs"
	"menuai/service"
	"menuai/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, st store.MenuStore) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware(cfg.Server.CORSOrigins))

	// 组装服务
	mailService := service.NewEmailService(&cfg.Email)
	publishService := service.NewPublishService(st, cfg, mailService)
	paymentService := service.NewPaymentService(st, cfg)
	parseService := service.NewParseService(&cfg.AI)

	menuHandler := api.NewMenuHandler(publishService)
	paymentHandler := api.NewPaymentHandler(paymentService)
	parseHandler := api.NewParseHandler(parseService)
	qrHandler := api.NewQRHandler()
	exportHandler := api.NewExportHandler(publishService)

	// 公开菜单页面
	r.GET("/menu/:slug", menuHandler.ViewPublic)

	// 业务 API
	apiGroup := r.Group("/api")
	{
		// AI 解析
		apiGroup.POST("/parse", parseHandler.ParseText)
		apiGroup.POST("/parse-photo", parseHandler.ParsePhoto)

		// 菜单预览与发布
		apiGroup.POST("/preview", menuHandler.Preview)
		apiGroup.POST("/publish", menuHandler.Publish)
		apiGroup.POST("/download-pdf", menuHandler.DownloadPDF)
		apiGroup.GET("/templates", menuHandler.Templates)
		apiGroup.GET("/my-menus", menuHandler.MyMenus)

		// 支付
		apiGroup.POST("/create-checkout", paymentHandler.CreateCheckout)
		apiGroup.POST("/webhook/stripe", paymentHandler.Webhook)
		apiGroup.GET("/menu-status/:slug", paymentHandler.Status)

		// 工具
		apiGroup.GET("/qr", qrHandler.Generate)
		apiGroup.GET("/export/excel", exportHandler.ExportExcel)

		// 健康检查
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// CORSMiddleware CORS 跨域中间件
// origins 为逗号分隔的允许来源列表，"*" 表示放行所有来源
func CORSMiddleware(origins string) gin.HandlerFunc {
	allowAll := origins == "" || origins == "*"
	allowed := make(map[string]bool)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, Stripe-Signature")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
