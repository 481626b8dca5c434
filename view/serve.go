package view

import (
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Serve serves rendered trip documents out of dir and opens the browser at
// openFileLink. Blocks until the process is interrupted.
func Serve(addr, dir, openFileLink string) error {
	fs := http.FileServer(http.Dir(dir))
	http.Handle("/", fs)
	url := "http://" + addr + openFileLink
	log.Info().Str("url", url).Str("dir", dir).Msg("Serving rendered trips")

	go func() {
		interruptChan := make(chan os.Signal, 1)
		signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)

		err := openBrowser(url)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open browser")
		}

		<-interruptChan
		log.Info().Msg("Shutting down server")
		os.Exit(0)
	}()
	return http.ListenAndServe(addr, nil)
}

func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "explorer"
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}

	cmdArgs := append(args, url)
	return exec.Command(cmd, cmdArgs...).Run()
}
