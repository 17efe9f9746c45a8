package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// New builds the admin RPC server with one namespace per entity.
func New(logger *slog.Logger, services *blog.Factory) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("posts", NewPostService(services.Posts()))
	rpcServer.Register("categories", NewCategoryService(services.Categories()))
	rpcServer.Register("tags", NewTagService(services.Tags()))
	rpcServer.Register("users", NewUserService(services.Users()))
	rpcServer.Register("icons", NewIconService(services.Icons()))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "gunlinux.ru", nil))

	return rpcServer
}
