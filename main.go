package main

import (
	"flag"
	"log"
	"strings"

	"menuai/config"
	"menuai/router"
	"menuai/store"

	"github.com/joho/godotenv"
)

// @title MenuAI API
// @version 1.0
// @description AI 菜单生成系统 API，支持文本/照片解析、模板预览、菜单发布与 Stripe 支付解锁
// @host localhost:8000
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8000 或 :8000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("MenuAI v1.0.0")
		return
	}

	// 加载 .env 文件（不存在时忽略）
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env 文件")
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化存储（数据库未配置时回退到内存存储）
	st, err := store.New(cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, st)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  🍜 MenuAI 已启动")
	log.Printf("==========================================")
	log.Printf("  公开菜单: http://localhost%s/menu/{slug}", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
