package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/tray"
)

var serveFlags struct {
	addr         string
	device       int
	motionThresh float64
	noTray       bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run headless with an HTTP API and system tray",
	Long: `Runs the recognition pipeline in the background with motion-gated frame
rates, and serves the camera stream, recognition feed, and transcript API
over HTTP. A system tray icon toggles recognition on and off.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", ":8080", "HTTP listen address")
	f.IntVar(&serveFlags.device, "camera", 0, "camera device index")
	f.Float64Var(&serveFlags.motionThresh, "motion-threshold", 1.0, "motion threshold in percent pixel change")
	f.BoolVar(&serveFlags.noTray, "no-tray", false, "run without the system tray")
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:        st,
		Device:       serveFlags.device,
		Detector:     detector.DefaultConfig(),
		SpellMode:    true,
		MotionThresh: serveFlags.motionThresh,
	})

	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	srv := server.New(server.Config{
		Store:  st,
		Camera: a.Camera(),
		Status: a,
	})
	defer srv.Close()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving on %s", serveFlags.addr)
		errCh <- srv.ListenAndServe(serveFlags.addr)
	}()

	if serveFlags.noTray {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			log.Println("Shutting down")
			return nil
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		}
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnViewer(func() {
		if err := openBrowser(viewerURL(serveFlags.addr)); err != nil {
			log.Printf("Failed to open viewer: %v", err)
		}
	})
	t.OnQuit(func() {
		log.Println("Shutting down")
	})
	a.OnSignChange(func(res sign.Result) {
		t.SetLastSign(res.Sign.String())
	})

	// A server failure must unwind the tray loop so the deferred cleanup runs
	go func() {
		if err := <-errCh; err != nil {
			log.Printf("Server failed: %v", err)
			t.Quit()
		}
	}()

	// systray owns the main loop from here
	t.Run()
	return nil
}

// viewerURL turns a listen address into a browsable URL, substituting
// localhost when the address binds all interfaces.
func viewerURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://localhost:8080"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
