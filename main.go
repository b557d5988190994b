package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"jenny-wellness/internal/config"
	"jenny-wellness/internal/handler"
	"jenny-wellness/internal/i18n"
	"jenny-wellness/internal/metrics"
	"jenny-wellness/internal/relay"
	"jenny-wellness/internal/router"
	"jenny-wellness/internal/telegram"
	"jenny-wellness/web"
)

func main() {
	fmt.Println("🚀 Запуск сайта анкет Jenny Wellness...")

	// Загружаем переменные окружения; отсутствие .env не фатально —
	// секреты могут прийти из окружения хостинга
	err := godotenv.Load()
	if err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg := config.LoadAppConfig()
	if !cfg.TelegramConfigured() {
		// Не валим процесс: страницы работают, а эндпоинт отправки
		// будет отвечать 500, пока секреты не заданы
		log.Println("⚠️ TELEGRAM_BOT_TOKEN или TELEGRAM_CHAT_ID не заданы — отправка анкет работать не будет")
	}

	// Загружаем описания анкет и словари локализации
	schemas, err := config.LoadQuestionnaires("config/questionnaires.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки описаний анкет: %v", err)
	}

	bundle, err := i18n.Load("config/i18n.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки локализации: %v", err)
	}

	// Инициализируем сервисы
	fmt.Println("🔧 Инициализация сервисов...")

	m := metrics.NewMetrics()

	bot := telegram.New(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Relay.AttachmentTimeout, cfg.Telegram.Debug)
	relayService := relay.New(bot, bundle, schemas, m, cfg.Relay.AttachmentDelay)
	fmt.Println("✅ Пересылка в Telegram инициализирована")

	pages, err := handler.NewPageHandler(bundle, schemas, web.Templates())
	if err != nil {
		log.Fatalf("Ошибка загрузки шаблонов: %v", err)
	}

	static, err := web.Static()
	if err != nil {
		log.Fatalf("Ошибка доступа к статическим файлам: %v", err)
	}

	submit := handler.NewSubmitHandler(cfg, schemas, relayService, m)
	status := handler.NewStatusHandler(m)
	r := router.New(pages, submit, status, static)
	fmt.Println("✅ HTTP маршруты инициализированы")

	fmt.Println("\n📋 Конфигурация:")
	fmt.Printf("• Вариантов анкет: %d\n", len(schemas.Questionnaires))
	fmt.Printf("• Порт: %d\n", cfg.Server.Port)
	fmt.Printf("• Таймаут вложения: %s\n", cfg.Relay.AttachmentTimeout)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🌐 Сервер запущен на http://localhost:%d\n", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	// Ждем сигнал остановки и гасим сервер аккуратно
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	fmt.Println("\n⏳ Остановка сервера...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Printf("Ошибка остановки сервера: %v", err)
	}
	fmt.Println("✅ Сервер остановлен")
}
