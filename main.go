package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/backtrack-maze/api"
	api_i "github.com/beka-birhanu/backtrack-maze/api/i"
	mazeapi "github.com/beka-birhanu/backtrack-maze/api/maze"
	"github.com/beka-birhanu/backtrack-maze/config"
	logger "github.com/beka-birhanu/backtrack-maze/infrastruture/log"
	"github.com/beka-birhanu/backtrack-maze/service"
)

// Global variables for dependencies
var (
	appLogger      *logger.Logger
	mazeService    *service.MazeService
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.Config{
		MaxDimension: config.Envs.MaxMazeDimension,
		DefaultSize:  config.Envs.DefaultMazeSize,
		Logger:       serviceLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initMazeService()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
