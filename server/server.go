package server

import (
	"fmt"

	"github.com/xxxsen/common/webapi"
	"github.com/xxxsen/common/webapi/proxyutil"
	"github.com/xxxsen/davgate/server/handler/drive"
	"github.com/xxxsen/davgate/server/middleware"
	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

type Server struct {
	c      *config
	engine webapi.IWebEngine
}

func New(bind string, opts ...Option) (*Server, error) {
	c := applyOpts(opts...)
	if c.cli == nil {
		return nil, fmt.Errorf("no webdav client found")
	}
	svr := &Server{c: c}
	var err error
	svr.engine, err = webapi.NewEngine("/", bind, webapi.WithRegister(svr.initAPI))
	if err != nil {
		return nil, err
	}
	return svr, nil
}

func (s *Server) initAPI(router *gin.RouterGroup) {
	router.Use(middleware.RequestIdMiddleware())
	if s.c.corsEnable {
		cc := cors.DefaultConfig()
		cc.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
		cc.AllowHeaders = []string{"Origin", "Content-Type", "X-Drive-Config"}
		if len(s.c.corsOrigins) == 0 {
			cc.AllowAllOrigins = true
		} else {
			cc.AllowOrigins = s.c.corsOrigins
		}
		router.Use(cors.New(cc))
	}

	// handler here
	driveHandler := drive.NewDriveHandler(s.c.cli)

	driveRouter := router.Group("/api/drive", middleware.MustDriveConfigMiddleware())
	{
		driveRouter.GET("/list", driveHandler.ListEntries)
		driveRouter.GET("/download", driveHandler.DownloadEntry)
		driveRouter.PUT("/upload", middleware.NonLengthIOLimitMiddleware(), driveHandler.UploadEntry)
		driveRouter.DELETE("/remove", driveHandler.RemoveEntry)
		driveRouter.POST("/mkdir", proxyutil.WrapBizFunc(driveHandler.MkdirEntry, &model.MkdirRequest{}))
		driveRouter.POST("/move", proxyutil.WrapBizFunc(driveHandler.MoveEntry, &model.MoveEntryRequest{}))
		driveRouter.POST("/copy", proxyutil.WrapBizFunc(driveHandler.CopyEntry, &model.CopyEntryRequest{}))
	}
}

func (s *Server) Run() error {
	return s.engine.Run()
}
