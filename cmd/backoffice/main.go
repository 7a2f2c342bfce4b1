package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/config"
	"github.com/apires/pizzaria-backoffice/internal/inventory"
	"github.com/apires/pizzaria-backoffice/internal/orders"
	"github.com/apires/pizzaria-backoffice/internal/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalw("falha ao carregar configuração", "err", err)
	}

	sess := session.New(cfg.API.Token)
	sess.OnInvalidate(func() {
		zap.S().Warn("sessão invalidada pela API; defina um novo API_TOKEN")
	})

	client := api.NewClient(&cfg.API, sess)

	handler := &Handler{
		client:  client,
		estoque: inventory.NewViewModel(client, cfg.View.EstoquePageSize, cfg.View.EstoqueSortPadrao, cfg.View.EstoqueBaixoLimite),
		pedidos: orders.NewViewModel(client, cfg.View.PedidosPageSize),
	}

	router := gin.Default()
	router.GET("/health", handler.Health)

	router.GET("/estoque", handler.ListarEstoque)
	router.GET("/estoque/produtos/:id", handler.BuscarProduto)
	router.POST("/estoque/produtos", handler.CadastrarProduto)
	router.DELETE("/estoque/produtos/:id", handler.DeletarProduto)

	router.GET("/pedidos-ativos", handler.ListarPedidosAtivos)
	router.PUT("/pedidos-ativos/:id/status", handler.AtualizarStatusPedido)
	router.DELETE("/pedidos-ativos/:id", handler.CancelarPedido)

	router.GET("/cardapio", handler.Cardapio)
	router.POST("/pedidos", handler.GerarPedido)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zap.S().Infow("backoffice iniciado", "porta", cfg.Server.Port, "api", cfg.API.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("erro no servidor", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("erro ao encerrar servidor", "err", err)
	}
}
