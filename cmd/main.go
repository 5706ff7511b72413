package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	alarmDal "github.com/drowsalert/admin-api/alarm/dal"
	alarmService "github.com/drowsalert/admin-api/alarm/service"
	"github.com/drowsalert/admin-api/cmd/api"
	"github.com/drowsalert/admin-api/common"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/logger"
	notificationService "github.com/drowsalert/admin-api/notification/service"
)

const (
	defaultAddr = "0.0.0.0:8082"

	pushTopic = "drowsiness-alarms"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	if common.ProjectID == "" {
		return errors.New("GOOGLE_CLOUD_PROJECT must be set")
	}

	// Initialize basic context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logging clients
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	// Initialize platform clients
	conn, err := connection.NewConnection(ctx, logging)
	if err != nil {
		log.Printf("main: could not initialize platform clients. error %s", err)
		return err
	}

	// =================
	// Start alarm pipeline
	log.Print("started: initializing alarm pipeline")

	dispatcher := notificationService.NewDispatcher(logger.FromContext,
		notificationService.NewSoundNotifier(os.Stdout),
		notificationService.NewPushNotifier(conn.Messaging(ctx), pushTopic),
	)

	alarms := alarmDal.NewAlarmsFirestoreWithClient(logger.FromContext, conn.Firestore)
	stream := alarmService.NewStream(logger.FromContext)
	debouncer := alarmService.NewDebouncer(logger.FromContext)

	occurrences := debouncer.Run(ctx, stream.Run(ctx, alarms.Subscribe(ctx)))

	go dispatcher.Run(ctx, occurrences)

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Inject needed functionality into the api.
	a := api.NewAPI(shutdown, logging, conn, dispatcher)

	addr := getAddr()

	server := http.Server{
		Addr:    addr,
		Handler: a.Build(),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for requests.
	go func() {
		log.Printf("listening on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		// Stopping the change-feed listener closes the pipeline channels
		// producer-side; in-flight dispatches complete.
		cancel()

		shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
		defer shutdownCancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		// Log the status of this shutdown.
		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}

func getAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		return defaultAddr
	}

	return fmt.Sprintf(":%s", port)
}
