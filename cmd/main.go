package main

import (
    "os"

    "github.com/Nemoeiei/calories-guard/config"
    "github.com/Nemoeiei/calories-guard/controllers"
    "github.com/Nemoeiei/calories-guard/routes"
    "github.com/Nemoeiei/calories-guard/services"

    "go.uber.org/zap"
)

func main() {
    config.InitLogger()
    defer config.Log.Sync()

    config.InitDB()

    hub := services.NewRealtimeHub()
    services.InitEventDeps(hub, config.Log)
    controllers.InitRealtime(hub)

    addr := ":" + os.Getenv("PORT")
    if addr == ":" {
        addr = ":8080"
    }

    r := routes.SetupRouter()
    config.Log.Info("listening", zap.String("addr", addr))
    if err := r.Run(addr); err != nil {
        config.Log.Fatal("server exited", zap.Error(err))
    }
}
