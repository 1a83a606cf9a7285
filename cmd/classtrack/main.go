package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yw-tools/classtrack/internal/app"
	"github.com/yw-tools/classtrack/internal/classroom"
	"github.com/yw-tools/classtrack/internal/config"
	"github.com/yw-tools/classtrack/internal/export"
	"github.com/yw-tools/classtrack/internal/logging"
	"github.com/yw-tools/classtrack/internal/observability"
	"github.com/yw-tools/classtrack/internal/store"
)

const release = "classtrack@dev"

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, ".env не найден, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "конфигурация:", err)
		os.Exit(1)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "логгер:", err)
		os.Exit(1)
	}
	defer lg.Closer()
	log := lg.Sugar

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		log.Warnw("sentry не инициализирован", "err", err)
	}
	defer flush()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalw("хранилище не открылось", "path", cfg.DBPath, "err", err)
	}
	defer func() { _ = st.Close() }()

	svc, err := classroom.New(st, log)
	if err != nil {
		log.Fatalw("загрузка состояния", "err", err)
	}
	for _, w := range svc.LoadWarnings() {
		log.Warn(w)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		out := fs.String("out", export.DefaultFilename(), "путь к xlsx-файлу")
		_ = fs.Parse(args[1:])
		if err := runExport(svc, cfg, *out); err != nil {
			log.Fatalw("выгрузка", "err", err)
		}
		log.Infow("журнал выгружен", "path", *out)
	case "serve":
		runServe(cfg, st, log)
	default:
		usage()
		os.Exit(2)
	}
}

func runExport(svc *classroom.Service, cfg *config.Config, out string) error {
	wb, err := export.BuildWorkbook(svc.Students(), cfg.Location)
	if err != nil {
		return err
	}
	return wb.Save(out)
}

func runServe(cfg *config.Config, st store.Store, log *zap.SugaredLogger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.StartHTTP(ctx, cfg.HTTPAddr, st)
	log.Infow("служебный сервер запущен", "addr", cfg.HTTPAddr)
	<-ctx.Done()
}

func usage() {
	fmt.Fprintln(os.Stderr, `использование:
  classtrack export [-out файл.xlsx]  выгрузить журнал класса в Excel
  classtrack serve                    поднять /healthz и /metrics`)
}
