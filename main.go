package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rockrev/api"
	"rockrev/command"
	"rockrev/config"
	"rockrev/db"
	"rockrev/misc"
	"rockrev/service"
	"rockrev/storage"
	"rockrev/telegram"
)

func main() {
	cfg := config.Load()

	conn := db.Connect(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	images, err := storage.NewStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		misc.Fatal("media_dir", "create media dir", err)
	}

	users := service.NewUsers(conn)

	var notifier service.Notifier = telegram.NopNotifier{}
	if cfg.TelegramToken != "" {
		bot := telegram.Connect(cfg.TelegramToken)
		notifier = &telegram.BotNotifier{Bot: bot, Timeout: config.NotifyTimeout}
		go command.Listen(users, bot)
	} else {
		misc.Info("no telegram token, notifications disabled")
	}

	dispatcher := service.NewDispatcher(conn, notifier)
	titles := service.NewTitles(conn, dispatcher)

	router := api.NewRouter(&api.Handlers{
		Users:     users,
		Bands:     service.NewBands(conn, images),
		SubGenres: service.NewSubGenres(conn),
		Titles:    titles,
		Reviews:   service.NewReviews(conn),
		Comments:  service.NewComments(conn),
		Follows:   service.NewFollows(conn),
		Profiles:  service.NewProfiles(conn, images),
		Home:      service.NewHome(conn, titles),
		News:      service.NewNews(conn, cfg.NewsAPIKey, cfg.NewsFeeds),
		JWTSecret: cfg.JWTSecret,
		MediaDir:  cfg.MediaDir,
		MediaURL:  cfg.MediaBaseURL,
	})

	server := &http.Server{Addr: cfg.Addr, Handler: router}
	go func() {
		misc.Info("listening on " + cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			misc.Fatal("http_serve", "http server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	misc.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		misc.Error("http_shutdown", "shutdown", err)
	}
}
