package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp khởi tạo router, websocket và cron. Các kết nối DB/Redis
// được mở riêng và inject xuống, không giữ trong package này.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Signature")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New()

	return router, m, c
}

// InitWebSocket gắn endpoint websocket cho bảng điều khiển admin
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
}
