package grpc

import (
	"net"
	"sync/atomic"

	"github.com/spf13/viper"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type App struct {
	health.UnimplementedHealthServer

	srv     *grpc.Server
	serving atomic.Bool
}

func NewGrpc() *App {
	server := &App{
		srv: grpc.NewServer(),
	}
	server.serving.Store(true)

	health.RegisterHealthServer(server.srv, server)
	reflection.Register(server.srv)

	return server
}

func (v *App) Listen() error {
	listener, err := net.Listen("tcp", viper.GetString("grpc_bind"))
	if err != nil {
		return err
	}

	return v.srv.Serve(listener)
}

func (v *App) Stop() {
	v.srv.GracefulStop()
}
