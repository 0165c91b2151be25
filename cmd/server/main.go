package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/careernet/careernet-backend/feed"
	"github.com/careernet/careernet-backend/server"
	"github.com/careernet/careernet-backend/server/middlewares"
	"github.com/careernet/careernet-backend/store"
	"github.com/careernet/careernet-backend/utils"
	"github.com/careernet/careernet-backend/utils/dotenv"
	. "github.com/careernet/careernet-backend/utils/flag"
	. "github.com/careernet/careernet-backend/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	LogV2.Info("feed server shutdown")
}

func main() {
	ParseFlags()
	defer cleanup()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		panic("failed to connect to database : " + err.Error())
	}
	if err := utils.FeedDBSetup(db); err != nil {
		panic("failed to migrate database : " + err.Error())
	}

	// Read markers are best-effort, run without them if redis is down.
	var readStatus feed.ReadStatusStore
	if statusStore, err := utils.GetRedisStatusStore(); err != nil {
		LogV2.Error(fmt.Sprintf("redis unavailable, read status disabled: %v", err))
	} else {
		readStatus = statusStore
	}

	composer := feed.NewComposer(
		store.NewSocialGraphStore(db),
		store.NewProfileStore(db),
		store.NewContentStore(db),
		store.NewDiscussionStore(db),
		readStatus,
	)

	middlewares.Setup()

	if utils.IsProdEnv() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(gintrace.Middleware(*ServiceName))

	api := router.Group("/api/v1", middlewares.JWT())
	api.GET("/feed", server.FeedHandler(composer))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "careernet server - API not found"})
	})

	LogV2.Info("feed server starts up")
	router.Run(":8080")
}
