package config

import (
	"fmt"
	"log"

	middlewares "hotel-admin/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

// InitApp inicializa el router, el websocket y el cron
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.Use(middlewares.SessionMiddleware())

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	LoadEnv()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// Sin redis el servicio sigue funcionando, solo pierde el
		// respaldo del snapshot entre reinicios
		log.Printf("Warning: no se pudo conectar a Redis, se continúa sin cache: %v", err)
		RedisClient = nil
	}

	log.Println("Componentes inicializados")
	return nil
}

// InitWebSocket expone el canal websocket por el que se difunde el resumen
// de ocupación después de cada refresco
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket inicializado")
}
