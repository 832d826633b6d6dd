package main

import (
	"chunkd/controllers"
	"chunkd/core"
	"chunkd/models"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.Document{},
		&models.DocumentChunk{},
	)
	if err != nil {
		panic(err)
	}

	server := createServer(db)
	server.Run()
}

func createServer(db *gorm.DB) *gin.Engine {
	// set up http server
	engine := gin.Default()
	err := engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "https://"+os.Getenv("UI_DOMAIN"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	logger, err := core.NewLogger()
	if err != nil {
		panic(err)
	}

	router := controllers.Router{
		HealthController: &controllers.HealthController{
			DB:     db,
			Logger: logger.With("controller", "health"),
		},
		SplitController: &controllers.SplitController{
			Logger: logger.With("controller", "split"),
		},
		DocumentsController: &controllers.DocumentsController{
			DB:     db,
			Logger: logger.With("controller", "documents"),
		},
	}

	router.RegisterRoutes(engine)
	return engine
}
